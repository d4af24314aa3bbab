package models

import (
	"fmt"
	"time"
)

// The Investment struct contains the realized performance of one historical
// investment. MOIC and IRR drive the simulation; the dates are used for
// holding period diagnostics and reporting.
type Investment struct {
	InvestmentName string    `csv:"investment_name" db:"investment_name"`
	FundName       string    `csv:"fund_name" db:"fund_name"`
	EntryDate      time.Time `csv:"-" db:"entry_date"`
	LatestDate     time.Time `csv:"-" db:"latest_date"`
	MOIC           float64   `csv:"moic" db:"moic"`
	IRR            float64   `csv:"irr" db:"irr"`
}

// DaysHeld is the calendar distance between entry and the latest valuation.
func (inv *Investment) DaysHeld() int {
	return int(inv.LatestDate.Sub(inv.EntryDate).Hours() / 24)
}

// Validate returns a list of problems with the record, empty if it is usable.
func (inv *Investment) Validate() []string {
	var problems []string
	if inv.InvestmentName == "" {
		problems = append(problems, "investment name is required")
	}
	if inv.FundName == "" {
		problems = append(problems, "fund name is required")
	}
	if !inv.EntryDate.IsZero() && !inv.LatestDate.IsZero() && !inv.EntryDate.Before(inv.LatestDate) {
		problems = append(problems, fmt.Sprintf("entry date %v must be before latest date %v",
			inv.EntryDate.Format("2006-01-02"), inv.LatestDate.Format("2006-01-02")))
	}
	if inv.MOIC < 0 {
		problems = append(problems, fmt.Sprintf("MOIC %0.2f cannot be negative", inv.MOIC))
	}
	if inv.IRR < -1.0 {
		problems = append(problems, fmt.Sprintf("IRR %0.2f cannot be less than -100%%", inv.IRR))
	}
	return problems
}
