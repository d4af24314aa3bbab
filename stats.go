package fundsim

import (
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"time"

	"github.com/fatih/structs"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
	"github.com/zmatula/Fund-Analysis-Platform-sub001/utils"
)

// Bin count for the distribution histograms.
const defaultHistogramBins = 20

// summarize aggregates the collected trial results into the run summary and
// feeds whichever export sinks are toggled on.
func summarize(sim *models.Simulation) {
	moics := make([]float64, len(sim.Results))
	irrs := make([]float64, len(sim.Results))
	nonConverged := 0
	for i, result := range sim.Results {
		moics[i] = result.NetMOIC
		irrs[i] = result.NetIRR
		if !result.IRRConverged {
			nonConverged++
		}
	}

	summary := models.SimulationSummary{
		RunID:        sim.Name + "-" + uuid.New().String(),
		Timestamp:    time.Now(),
		TotalRuns:    len(sim.Results),
		MOIC:         computeAggregateStats(moics, defaultHistogramBins),
		IRR:          computeAggregateStats(irrs, defaultHistogramBins),
		NonConverged: nonConverged,
	}
	copier.Copy(&summary.Config, &sim.Config)
	sim.Summary = summary

	logSummary(sim)
	logCloudResults(sim)

	if sim.LogResults {
		// Log per-trial results
		os.Remove("results.csv")
		resultsFile, err := os.OpenFile("results.csv", os.O_RDWR|os.O_CREATE, os.ModePerm)
		if err != nil {
			panic(err)
		}
		defer resultsFile.Close()

		err = gocsv.MarshalFile(&sim.Results, resultsFile)
		if err != nil {
			panic(err)
		}
	}
}

// computeAggregateStats summarizes one metric across every trial: mean,
// median, sample standard deviation, min/max, the percentile table and
// histogram bins. Deterministic for a given result collection.
func computeAggregateStats(values []float64, bins int) models.AggregateStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	stats := models.AggregateStats{
		Mean:   stat.Mean(sorted, nil),
		Median: percentile(sorted, 50),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		P5:     percentile(sorted, 5),
		P25:    percentile(sorted, 25),
		P50:    percentile(sorted, 50),
		P75:    percentile(sorted, 75),
		P95:    percentile(sorted, 95),
	}
	if len(sorted) > 1 {
		stats.Std = stat.StdDev(sorted, nil)
	}

	stats.HistogramDividers, stats.HistogramCounts = histogram(sorted, bins)
	return stats
}

// percentile computes the p-th percentile of pre-sorted values with linear
// interpolation between order statistics. gonum's Quantile kinds interpolate
// on the empirical CDF instead, which is not the table the reports use, so
// the rank arithmetic lives here.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[lower+1]-sorted[lower])
}

// histogram bins pre-sorted values over [min, max]. The top edge is nudged up
// so the maximum lands in the final bin.
func histogram(sorted []float64, bins int) ([]float64, []float64) {
	min := sorted[0]
	max := sorted[len(sorted)-1]
	if min == max {
		// Degenerate distribution, one bin holds everything.
		return []float64{min, max}, []float64{float64(len(sorted))}
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, min, max)
	// Span rounding can leave the top edge at max itself, which drops the
	// maximum from the last bin. Pin it strictly above max.
	dividers[bins] = math.Nextafter(max, math.Inf(1))
	counts := stat.Histogram(make([]float64, bins), dividers, sorted, nil)
	return dividers, counts
}

// logSummary prints the run report: headline numbers plus a key/value block
// per metric when LogStats is on.
func logSummary(sim *models.Simulation) {
	summary := sim.Summary
	log.Println("Completed", summary.TotalRuns, "trials for", sim.Name)
	if summary.NonConverged > 0 {
		log.Println("IRR non-convergence on", summary.NonConverged, "trials (best iterate retained)")
	}
	fmt.Printf("Mean Net MOIC %0.4f \n Median Net MOIC %0.4f \n Mean Net IRR %0.4f \n Median Net IRR %0.4f \n P5 MOIC %0.4f \n P95 MOIC %0.4f \n",
		summary.MOIC.Mean,
		summary.MOIC.Median,
		summary.IRR.Mean,
		summary.IRR.Median,
		summary.MOIC.P5,
		summary.MOIC.P95,
	)

	if sim.LogStats {
		fmt.Print("MOIC Distribution")
		fmt.Printf("%s", utils.CreateKeyValuePairs(scalarStats(summary.MOIC), true))
		fmt.Print("IRR Distribution")
		fmt.Printf("%s", utils.CreateKeyValuePairs(scalarStats(summary.IRR), true))
	}
}

// scalarStats drops the histogram slices so the key/value report stays flat.
func scalarStats(stats models.AggregateStats) map[string]interface{} {
	m := structs.Map(stats)
	delete(m, "HistogramDividers")
	delete(m, "HistogramCounts")
	return m
}

// logCloudResults publishes per-trial net results to the results influx
// database, tagged by fund and run. The engine itself keeps the run in
// memory; this is an export sink for dashboards.
func logCloudResults(sim *models.Simulation) {
	if !sim.LogCloudResults {
		return
	}

	influxURL := os.Getenv("FUNDSIM_RESULTS_DB_URL")
	if influxURL == "" {
		log.Fatalln("You need to set the `FUNDSIM_RESULTS_DB_URL` env variable")
	}

	influxUser := os.Getenv("FUNDSIM_RESULTS_DB_USER")
	influxPassword := os.Getenv("FUNDSIM_RESULTS_DB_PASSWORD")

	influx, _ := client.NewHTTPClient(client.HTTPConfig{
		Addr:     influxURL,
		Username: influxUser,
		Password: influxPassword,
		Timeout:  (time.Millisecond * 1000 * 10),
	})

	log.Println("LogCloudResults")
	bp, _ := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  "fundsim",
		Precision: "us",
	})

	tags := map[string]string{
		"fund_name": sim.Name,
		"run_id":    sim.Summary.RunID,
	}
	for i, result := range sim.Results {
		pt, _ := client.NewPoint(
			"results",
			tags,
			map[string]interface{}{
				"net_moic":       result.NetMOIC,
				"net_irr":        result.NetIRR,
				"portfolio_size": result.PortfolioSize,
			},
			sim.Summary.Timestamp.Add(time.Duration(i)*time.Microsecond),
		)
		bp.AddPoint(pt)
	}
	err := client.Client.Write(influx, bp)
	log.Println(sim.Name, err)
}
