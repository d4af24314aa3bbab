package models

import (
	"testing"
	"time"
)

func validConfig() SimulationConfig {
	return SimulationConfig{
		FundName:          "Test Fund",
		LeverageRate:      0.5,
		CostOfCapital:     0.08,
		FeeRate:           0.02,
		CarryRate:         0.2,
		HurdleRate:        0.08,
		TrialCount:        10000,
		PortfolioSizeMean: 10,
		PortfolioSizeStd:  2,
		RandomSeed:        42,
	}
}

func TestConfigValidatePasses(t *testing.T) {
	config := validConfig()
	if problems := config.Validate(); len(problems) != 0 {
		t.Errorf("Bad validation: %v, expected no problems", problems)
	}
}

func TestConfigValidateCatchesRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimulationConfig)
	}{
		{"leverage above 1", func(c *SimulationConfig) { c.LeverageRate = 1.5 }},
		{"negative cost of capital", func(c *SimulationConfig) { c.CostOfCapital = -0.1 }},
		{"fee above 10%", func(c *SimulationConfig) { c.FeeRate = 0.2 }},
		{"carry above 50%", func(c *SimulationConfig) { c.CarryRate = 0.6 }},
		{"hurdle above 100%", func(c *SimulationConfig) { c.HurdleRate = 1.2 }},
		{"trial count too low", func(c *SimulationConfig) { c.TrialCount = 50 }},
		{"trial count too high", func(c *SimulationConfig) { c.TrialCount = 2000000 }},
		{"mean below 1", func(c *SimulationConfig) { c.PortfolioSizeMean = 0.5 }},
		{"negative std dev", func(c *SimulationConfig) { c.PortfolioSizeStd = -1 }},
	}
	for _, tc := range cases {
		config := validConfig()
		tc.mutate(&config)
		if problems := config.Validate(); len(problems) == 0 {
			t.Errorf("Bad validation for %v: no problems reported", tc.name)
		}
	}
}

func hashInvestments() []*Investment {
	entry := time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC)
	return []*Investment{
		{InvestmentName: "Acme", FundName: "Fund I", EntryDate: entry, LatestDate: entry.AddDate(3, 0, 0), MOIC: 2.5, IRR: 0.25},
		{InvestmentName: "Borealis", FundName: "Fund I", EntryDate: entry, LatestDate: entry.AddDate(2, 0, 0), MOIC: 1.2, IRR: 0.05},
	}
}

func TestGenerateHashIsStable(t *testing.T) {
	first := validConfig()
	second := validConfig()
	dataA, totalA := first.GenerateHash(hashInvestments())
	dataB, totalB := second.GenerateHash(hashInvestments())
	if dataA != dataB {
		t.Errorf("Bad data hash: %v and %v, expected equal", dataA, dataB)
	}
	if totalA != totalB {
		t.Errorf("Bad total hash: %v and %v, expected equal", totalA, totalB)
	}
}

func TestGenerateHashIgnoresDatasetOrder(t *testing.T) {
	investments := hashInvestments()
	reversed := []*Investment{investments[1], investments[0]}

	first := validConfig()
	second := validConfig()
	dataA, _ := first.GenerateHash(investments)
	dataB, _ := second.GenerateHash(reversed)
	if dataA != dataB {
		t.Errorf("Bad data hash: order changed the hash")
	}
}

func TestGenerateHashSeesConfigChanges(t *testing.T) {
	first := validConfig()
	second := validConfig()
	second.CarryRate = 0.25

	dataA, totalA := first.GenerateHash(hashInvestments())
	dataB, totalB := second.GenerateHash(hashInvestments())
	if dataA != dataB {
		t.Errorf("Bad data hash: config change altered the dataset hash")
	}
	if totalA == totalB {
		t.Errorf("Bad total hash: config change not reflected")
	}
}
