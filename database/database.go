// Package database handles postgres connections for investment datasets and
// simulation results.
package database

import (
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/settings"
)

var (
	host     = "localhost"
	port     = 5432
	user     = "fundsim"
	password = "password"
	dbname   = "fundsim"
)

// SetCredentials applies service credentials loaded from settings.
func SetCredentials(config settings.Config) {
	if config.DBHost != "" {
		host = config.DBHost
	}
	if config.DBPort != 0 {
		port = config.DBPort
	}
	if config.DBUser != "" {
		user = config.DBUser
	}
	if config.DBPassword != "" {
		password = config.DBPassword
	}
	if config.DBName != "" {
		dbname = config.DBName
	}
}

func connect() *sqlx.DB {
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	db, err := sqlx.Connect("postgres", psqlInfo)
	if err != nil {
		log.Fatal(err)
	}
	return db
}

// GetInvestments fetches every stored investment for a fund, oldest entry
// first.
func GetInvestments(fund string) []*models.Investment {
	db := connect()
	defer db.Close()

	investments := []*models.Investment{}
	err := db.Select(&investments, "select investment_name, fund_name, entry_date, latest_date, moic, irr from investments where fund_name = $1 order by entry_date", fund)
	if err != nil {
		log.Fatal(err)
	}

	if len(investments) == 0 {
		log.Fatal("There doesn't seem to be any investment data for ", fund, " in the database. Maybe the fund name is misspelled?")
	}
	return investments
}

// GetInvestmentsByTime fetches a fund's investments entered inside a window.
func GetInvestmentsByTime(fund string, start time.Time, end time.Time) []*models.Investment {
	db := connect()
	defer db.Close()

	investments := []*models.Investment{}
	err := db.Select(&investments, "select investment_name, fund_name, entry_date, latest_date, moic, irr from investments where fund_name = $1 and entry_date >= $2 and entry_date <= $3 order by entry_date", fund, start, end)
	if err != nil {
		log.Fatal(err)
	}
	return investments
}

// InsertInvestments stores a dataset, one row per investment.
func InsertInvestments(investments []*models.Investment) error {
	db := connect()
	defer db.Close()

	for _, inv := range investments {
		_, err := db.NamedExec(`insert into investments (investment_name, fund_name, entry_date, latest_date, moic, irr)
			values (:investment_name, :fund_name, :entry_date, :latest_date, :moic, :irr)`, inv)
		if err != nil {
			return err
		}
	}
	return nil
}

// InsertResults stores a completed run's per-trial rows under its run id.
func InsertResults(runID string, results []models.TrialResult) error {
	db := connect()
	defer db.Close()

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	for _, result := range results {
		_, err := tx.Exec(`insert into results (run_id, trial_id, portfolio_size, total_invested, net_returned,
			gross_moic, net_moic, gross_irr, net_irr, leverage_amount, leverage_cost, fees_paid, carry_paid, irr_converged)
			values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			runID, result.TrialID, result.PortfolioSize, result.TotalInvested, result.NetReturned,
			result.GrossMOIC, result.NetMOIC, result.GrossIRR, result.NetIRR,
			result.LeverageAmount, result.LeverageCost, result.FeesPaid, result.CarryPaid, result.IRRConverged)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
