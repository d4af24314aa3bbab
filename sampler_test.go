package fundsim

import (
	"math/rand"
	"testing"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

func setupDataset(count int) []*models.Investment {
	investments := make([]*models.Investment, count)
	for i := range investments {
		investments[i] = &models.Investment{
			InvestmentName: string(rune('A' + i)),
			FundName:       "Fund I",
			MOIC:           1.5,
			IRR:            0.12,
		}
	}
	return investments
}

func TestPortfolioSizeLowerBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		size := samplePortfolioSize(rng, 1, 10, 5)
		if size < 1 {
			t.Errorf("Bad portfolio size: %v, expected >= 1", size)
		}
	}
}

func TestPortfolioSizeUpperBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		size := samplePortfolioSize(rng, 50, 20, 5)
		if size > 10 {
			t.Errorf("Bad portfolio size: %v, expected <= 10", size)
		}
	}
}

func TestPortfolioSizeZeroStdDev(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		size := samplePortfolioSize(rng, 4, 0, 10)
		if size != 4 {
			t.Errorf("Bad portfolio size: %v, expected 4", size)
		}
	}
}

func TestSamplingWithReplacement(t *testing.T) {
	// A portfolio larger than the dataset can only be drawn with
	// replacement, so duplicates must occur.
	rng := rand.New(rand.NewSource(42))
	config := models.SimulationConfig{PortfolioSizeMean: 4, PortfolioSizeStd: 0}
	investments := setupDataset(2)

	portfolio := samplePortfolio(rng, config, investments)
	if len(portfolio) != 4 {
		t.Errorf("Bad portfolio size: %v, expected 4", len(portfolio))
	}
	seen := make(map[string]int)
	for _, inv := range portfolio {
		seen[inv.InvestmentName]++
	}
	duplicates := false
	for _, count := range seen {
		if count > 1 {
			duplicates = true
		}
	}
	if !duplicates {
		t.Errorf("Bad sampling: no duplicates in a portfolio of 4 from a dataset of 2")
	}
}

func TestSamplingDeterminism(t *testing.T) {
	config := models.SimulationConfig{PortfolioSizeMean: 6, PortfolioSizeStd: 2}
	investments := setupDataset(8)

	first := samplePortfolio(rand.New(rand.NewSource(7)), config, investments)
	second := samplePortfolio(rand.New(rand.NewSource(7)), config, investments)
	if len(first) != len(second) {
		t.Errorf("Bad determinism: sizes %v and %v, expected equal", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Bad determinism: draw %v differs between identically seeded streams", i)
		}
	}
}
