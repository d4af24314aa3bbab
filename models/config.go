package models

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
)

// The SimulationConfig struct contains every knob for a simulation run.
// All rate parameters are decimals (0.20 = 20%).
type SimulationConfig struct {
	FundName    string `json:"fund_name"`
	FundManager string `json:"fund_manager"`

	LeverageRate  float64 `json:"leverage_rate"`
	CostOfCapital float64 `json:"cost_of_capital"`
	FeeRate       float64 `json:"fee_rate"`
	CarryRate     float64 `json:"carry_rate"`
	HurdleRate    float64 `json:"hurdle_rate"`

	TrialCount        int     `json:"trial_count"`
	PortfolioSizeMean float64 `json:"portfolio_size_mean"`
	PortfolioSizeStd  float64 `json:"portfolio_size_std"`
	RandomSeed        int64   `json:"random_seed"`

	// Deduplication hashes, populated by GenerateHash.
	DataHash  string `json:"data_hash"`
	TotalHash string `json:"total_hash"`
}

// Loads a simulation config from a file.
func LoadSimulationConfig(fileName string) (config SimulationConfig) {
	file, _ := os.ReadFile(fileName)
	_ = json.Unmarshal(file, &config)
	return
}

// Validate returns the list of out-of-range parameters, empty if the config
// is runnable.
func (config *SimulationConfig) Validate() []string {
	var problems []string
	if config.LeverageRate < 0 || config.LeverageRate > 1 {
		problems = append(problems, fmt.Sprintf("leverage rate must be 0-100%% (got %0.2f)", config.LeverageRate))
	}
	if config.CostOfCapital < 0 || config.CostOfCapital > 1 {
		problems = append(problems, fmt.Sprintf("cost of capital must be 0-100%% (got %0.2f)", config.CostOfCapital))
	}
	if config.FeeRate < 0 || config.FeeRate > 0.1 {
		problems = append(problems, fmt.Sprintf("management fee rate must be 0-10%% (got %0.2f)", config.FeeRate))
	}
	if config.CarryRate < 0 || config.CarryRate > 0.5 {
		problems = append(problems, fmt.Sprintf("carry rate must be 0-50%% (got %0.2f)", config.CarryRate))
	}
	if config.HurdleRate < 0 || config.HurdleRate > 1 {
		problems = append(problems, fmt.Sprintf("hurdle rate must be 0-100%% (got %0.2f)", config.HurdleRate))
	}
	if config.TrialCount < 100 || config.TrialCount > 1000000 {
		problems = append(problems, fmt.Sprintf("trial count must be 100-1,000,000 (got %d)", config.TrialCount))
	}
	if config.PortfolioSizeMean < 1 {
		problems = append(problems, fmt.Sprintf("portfolio size mean must be >= 1 (got %0.2f)", config.PortfolioSizeMean))
	}
	if config.PortfolioSizeStd < 0 {
		problems = append(problems, fmt.Sprintf("portfolio size std dev cannot be negative (got %0.2f)", config.PortfolioSizeStd))
	}
	return problems
}

type hashedInvestment struct {
	Name   string  `json:"name"`
	Fund   string  `json:"fund"`
	Entry  string  `json:"entry"`
	Latest string  `json:"latest"`
	MOIC   float64 `json:"moic"`
	IRR    float64 `json:"irr"`
}

// GenerateHash fills DataHash and TotalHash with SHA256 hashes of the dataset
// and of the dataset+configuration pair, used to deduplicate stored runs.
func (config *SimulationConfig) GenerateHash(investments []*Investment) (string, string) {
	hashed := make([]hashedInvestment, len(investments))
	for i, inv := range investments {
		hashed[i] = hashedInvestment{
			Name:   inv.InvestmentName,
			Fund:   inv.FundName,
			Entry:  inv.EntryDate.Format("2006-01-02"),
			Latest: inv.LatestDate.Format("2006-01-02"),
			MOIC:   roundTo(inv.MOIC, 6),
			IRR:    roundTo(inv.IRR, 6),
		}
	}
	sort.Slice(hashed, func(i, j int) bool {
		if hashed[i].Name != hashed[j].Name {
			return hashed[i].Name < hashed[j].Name
		}
		return hashed[i].Fund < hashed[j].Fund
	})

	data, _ := json.Marshal(hashed)
	config.DataHash = fmt.Sprintf("%x", sha256.Sum256(data))

	total, _ := json.Marshal(struct {
		DataHash          string  `json:"data_hash"`
		LeverageRate      float64 `json:"leverage_rate"`
		CostOfCapital     float64 `json:"cost_of_capital"`
		FeeRate           float64 `json:"fee_rate"`
		CarryRate         float64 `json:"carry_rate"`
		HurdleRate        float64 `json:"hurdle_rate"`
		TrialCount        int     `json:"trial_count"`
		PortfolioSizeMean float64 `json:"portfolio_size_mean"`
		PortfolioSizeStd  float64 `json:"portfolio_size_std"`
		FundName          string  `json:"fund_name"`
		FundManager       string  `json:"fund_manager"`
	}{
		DataHash:          config.DataHash,
		LeverageRate:      roundTo(config.LeverageRate, 6),
		CostOfCapital:     roundTo(config.CostOfCapital, 6),
		FeeRate:           roundTo(config.FeeRate, 6),
		CarryRate:         roundTo(config.CarryRate, 6),
		HurdleRate:        roundTo(config.HurdleRate, 6),
		TrialCount:        config.TrialCount,
		PortfolioSizeMean: roundTo(config.PortfolioSizeMean, 6),
		PortfolioSizeStd:  roundTo(config.PortfolioSizeStd, 6),
		FundName:          config.FundName,
		FundManager:       config.FundManager,
	})
	config.TotalHash = fmt.Sprintf("%x", sha256.Sum256(total))

	return config.DataHash, config.TotalHash
}

func roundTo(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}
