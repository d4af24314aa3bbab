package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "investments.csv")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInvestmentsAcceptedDateFormats(t *testing.T) {
	csv := strings.Join([]string{
		`Acme,Fund I,2015-01-02,2018-01-02,2.5,0.25`,
		`Borealis,Fund I,01/02/2015,01/02/2018,1.2,0.05`,
		`Cobalt,Fund II,2015/01/02,2018/01/02,0.0,-0.9999`,
		`Dynamo,Fund II,"Jan 2, 2015","Jan 2, 2018",4.0,0.6`,
	}, "\n")
	investments, problems, err := LoadInvestments(writeDataset(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Errorf("Bad problems: %v, expected none", problems)
	}
	if len(investments) != 4 {
		t.Fatalf("Bad investment count: %v, expected 4", len(investments))
	}
	for _, inv := range investments {
		if inv.EntryDate.Year() != 2015 || inv.LatestDate.Year() != 2018 {
			t.Errorf("Bad dates for %v: %v to %v", inv.InvestmentName, inv.EntryDate, inv.LatestDate)
		}
	}
	if investments[0].MOIC != 2.5 || investments[0].IRR != 0.25 {
		t.Errorf("Bad first row: %+v", investments[0])
	}
}

func TestLoadInvestmentsSkipsBadRows(t *testing.T) {
	csv := strings.Join([]string{
		`Acme,Fund I,2015-01-02,2018-01-02,2.5,0.25`,
		`Broken,Fund I,not-a-date,2018-01-02,2.5,0.25`,
		`AlsoBroken,Fund I,2015-01-02,2018-01-02,abc,0.25`,
		`Negative,Fund I,2015-01-02,2018-01-02,-1.0,0.25`,
	}, "\n")
	investments, problems, err := LoadInvestments(writeDataset(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(investments) != 1 {
		t.Errorf("Bad investment count: %v, expected 1", len(investments))
	}
	if len(problems) != 3 {
		t.Errorf("Bad problem count: %v, expected 3 (%v)", len(problems), problems)
	}
}

func TestLoadInvestmentsAdjustsFullLossIRR(t *testing.T) {
	csv := `Bust,Fund I,2015-01-02,2018-01-02,0.0,-1.0`
	investments, _, err := LoadInvestments(writeDataset(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(investments) != 1 {
		t.Fatalf("Bad investment count: %v, expected 1", len(investments))
	}
	if investments[0].IRR != -0.9999 {
		t.Errorf("Bad IRR: %v, expected -0.9999", investments[0].IRR)
	}
}

func TestLoadInvestmentsFlagsDuplicates(t *testing.T) {
	csv := strings.Join([]string{
		`Acme,Fund I,2015-01-02,2018-01-02,2.5,0.25`,
		`Acme,Fund I,2015-01-02,2018-01-02,2.5,0.25`,
	}, "\n")
	investments, problems, err := LoadInvestments(writeDataset(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	// Both rows are kept, the duplicate is only flagged.
	if len(investments) != 2 {
		t.Errorf("Bad investment count: %v, expected 2", len(investments))
	}
	if len(problems) != 1 {
		t.Errorf("Bad problem count: %v, expected 1", len(problems))
	}
}

func TestDedupeInvestments(t *testing.T) {
	investments := []*models.Investment{
		{InvestmentName: "Acme", FundName: "Fund I"},
		{InvestmentName: "Acme", FundName: "Fund I"},
		{InvestmentName: "Acme", FundName: "Fund II"},
	}
	deduped := DedupeInvestments(investments)
	if len(deduped) != 2 {
		t.Errorf("Bad deduped count: %v, expected 2", len(deduped))
	}
}

func TestSortByEntryDate(t *testing.T) {
	csv := strings.Join([]string{
		`Late,Fund I,2017-06-01,2019-06-01,1.5,0.1`,
		`Early,Fund I,2014-06-01,2019-06-01,2.0,0.2`,
	}, "\n")
	investments, _, err := LoadInvestments(writeDataset(t, csv))
	if err != nil {
		t.Fatal(err)
	}
	SortByEntryDate(investments)
	if investments[0].InvestmentName != "Early" {
		t.Errorf("Bad order: %v first, expected Early", investments[0].InvestmentName)
	}
}
