package fundsim

import (
	"github.com/zmatula/Fund-Analysis-Platform-sub001/logger"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

// CreateNewSimulation assembles an idle Simulation from a configuration and a
// historical dataset, filling in the standard defaults for anything unset.
func CreateNewSimulation(config models.SimulationConfig, investments []*models.Investment) models.Simulation {
	if config.TrialCount == 0 {
		config.TrialCount = 10000
	}
	if config.PortfolioSizeMean == 0 {
		config.PortfolioSizeMean = 10
	}
	name := config.FundName
	if name == "" {
		name = "simulation"
	}
	logger.Infof("Loaded %v historical investments for %v\n", len(investments), name)
	return models.Simulation{
		Name:        name,
		Config:      config,
		Investments: investments,
		State:       models.StateIdle,
	}
}
