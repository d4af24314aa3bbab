package models

// Run states for a Simulation. A run moves Idle -> Running -> Completed, or
// Running -> Failed when the setup is rejected before any trial executes.
const (
	StateIdle      = "idle"
	StateRunning   = "running"
	StateCompleted = "completed"
	StateFailed    = "failed"
)

// The Simulation struct aggregates everything one run needs: the validated
// configuration, the historical dataset, the collected per-trial results and
// the cross-trial summary.
type Simulation struct {
	Name        string
	Config      SimulationConfig
	Investments []*Investment
	State       string

	Results []TrialResult
	Summary SimulationSummary

	// Export toggles, all off by default. The engine itself keeps the run
	// in memory; these feed the external sinks after the trial loop.
	LogResults      bool // dump per-trial rows to results.csv
	LogCloudResults bool // publish per-trial rows to influx
	LogStats        bool // print the aggregate key/value report
}
