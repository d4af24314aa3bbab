// Package data handles loading and preparing historical investment datasets.
package data

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/utils"
)

// investmentRow mirrors the headerless import format:
// investment_name, fund_name, entry_date, latest_date, moic, irr
// Dates and numbers stay as strings here so a bad field rejects its row with
// a message instead of aborting the whole file.
type investmentRow struct {
	InvestmentName string `csv:"investment_name"`
	FundName       string `csv:"fund_name"`
	EntryDate      string `csv:"entry_date"`
	LatestDate     string `csv:"latest_date"`
	MOIC           string `csv:"moic"`
	IRR            string `csv:"irr"`
}

// LoadInvestments parses a headerless investment CSV. Unusable rows are
// skipped and reported in the returned problem list; only an unreadable file
// is an error.
func LoadInvestments(csvFile string) ([]*models.Investment, []string, error) {
	dataFile, err := os.Open(csvFile)
	if err != nil {
		return nil, nil, err
	}
	defer dataFile.Close()

	var rows []*investmentRow
	if err := gocsv.UnmarshalWithoutHeaders(dataFile, &rows); err != nil {
		return nil, nil, err
	}

	var investments []*models.Investment
	var problems []string
	seen := make(map[string]bool)
	for i, row := range rows {
		rowNum := i + 1
		inv, rowProblems := parseRow(row)
		if len(rowProblems) > 0 {
			for _, problem := range rowProblems {
				problems = append(problems, fmt.Sprintf("row %d: %s", rowNum, problem))
			}
			continue
		}
		combo := inv.InvestmentName + "|" + inv.FundName
		if seen[combo] {
			// Duplicates are kept but flagged, they may be deliberate.
			problems = append(problems, fmt.Sprintf("row %d: duplicate investment %q in fund %q", rowNum, inv.InvestmentName, inv.FundName))
		}
		seen[combo] = true
		investments = append(investments, inv)
	}
	return investments, problems, nil
}

func parseRow(row *investmentRow) (*models.Investment, []string) {
	row.InvestmentName = strings.TrimSpace(row.InvestmentName)
	row.FundName = strings.TrimSpace(row.FundName)
	row.MOIC = strings.TrimSpace(row.MOIC)
	row.IRR = strings.TrimSpace(row.IRR)
	entryDate, err := utils.ParseDate(row.EntryDate)
	if err != nil {
		return nil, []string{fmt.Sprintf("invalid entry date %q", row.EntryDate)}
	}
	latestDate, err := utils.ParseDate(row.LatestDate)
	if err != nil {
		return nil, []string{fmt.Sprintf("invalid latest date %q", row.LatestDate)}
	}
	moic, err := strconv.ParseFloat(row.MOIC, 64)
	if err != nil {
		return nil, []string{fmt.Sprintf("invalid MOIC %q", row.MOIC)}
	}
	irr, err := strconv.ParseFloat(row.IRR, 64)
	if err != nil {
		return nil, []string{fmt.Sprintf("invalid IRR %q", row.IRR)}
	}
	// Exactly -100% IRR is adjusted at the boundary so downstream
	// logarithms stay defined.
	if irr == -1.0 {
		irr = -0.9999
	}

	inv := &models.Investment{
		InvestmentName: row.InvestmentName,
		FundName:       row.FundName,
		EntryDate:      entryDate,
		LatestDate:     latestDate,
		MOIC:           moic,
		IRR:            irr,
	}
	if problems := inv.Validate(); len(problems) > 0 {
		return nil, problems
	}
	return inv, nil
}
