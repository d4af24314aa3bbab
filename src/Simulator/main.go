package main

import (
	"flag"
	"log"
	"os"

	fundsim "github.com/zmatula/Fund-Analysis-Platform-sub001"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/data"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/database"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/logger"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/settings"
)

func main() {
	csvFile := flag.String("data", "investments.csv", "historical investment csv")
	dbFund := flag.String("fund", "", "load the dataset for this fund from postgres instead of csv")
	configFile := flag.String("config", "config.json", "simulation config json")
	parallel := flag.Int("workers", 0, "run trials on this many workers, 0 for sequential")
	store := flag.Bool("store", false, "persist trial results to postgres")
	secrets := flag.Bool("secrets", false, "load service credentials from amazon secrets")
	flag.Parse()

	if *secrets {
		settings.LoadENV(true)
	}
	if *dbFund != "" || *store {
		service := settings.LoadConfig("service.json", *secrets)
		database.SetCredentials(service)
		if service.InfluxURL != "" {
			os.Setenv("FUNDSIM_RESULTS_DB_URL", service.InfluxURL)
			os.Setenv("FUNDSIM_RESULTS_DB_USER", service.InfluxUser)
			os.Setenv("FUNDSIM_RESULTS_DB_PASSWORD", service.InfluxPassword)
		}
	}

	var investments []*models.Investment
	if *dbFund != "" {
		investments = database.GetInvestments(*dbFund)
	} else {
		loaded, problems, err := data.LoadInvestments(*csvFile)
		if err != nil {
			log.Fatal(err)
		}
		for _, problem := range problems {
			logger.Errorf("import: %v\n", problem)
		}
		investments = loaded
	}
	investments = data.DedupeInvestments(investments)
	data.SortByEntryDate(investments)

	config := models.LoadSimulationConfig(*configFile)
	config.GenerateHash(investments)

	sim := fundsim.CreateNewSimulation(config, investments)
	sim.LogResults = true
	sim.LogStats = true
	sim.LogCloudResults = os.Getenv("FUNDSIM_RESULTS_DB_URL") != ""

	onProgress := func(fraction float64) {
		logger.Infof("progress %3.0f%%\n", fraction*100)
	}
	var err error
	if *parallel > 0 {
		err = fundsim.RunSimulationParallel(&sim, *parallel, onProgress)
	} else {
		err = fundsim.RunSimulation(&sim, onProgress)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *store {
		if err := database.InsertResults(sim.Summary.RunID, sim.Results); err != nil {
			log.Fatal(err)
		}
	}
}
