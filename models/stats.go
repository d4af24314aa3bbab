package models

import "time"

// The AggregateStats struct summarizes one metric across every trial.
type AggregateStats struct {
	Mean   float64
	Median float64
	Std    float64
	Min    float64
	Max    float64

	P5  float64
	P25 float64
	P50 float64
	P75 float64
	P95 float64

	// Histogram bin edges (len = bins+1) and counts (len = bins) for
	// distribution plotting.
	HistogramDividers []float64
	HistogramCounts   []float64
}

// The SimulationSummary struct is the aggregate output of a completed run.
type SimulationSummary struct {
	RunID     string
	Timestamp time.Time
	Config    SimulationConfig
	TotalRuns int

	MOIC AggregateStats
	IRR  AggregateStats

	// Trials whose net IRR solve stopped at the best iterate instead of
	// converging.
	NonConverged int
}
