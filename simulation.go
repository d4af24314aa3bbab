package fundsim

import (
	"log"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

// ProgressFunc receives a monotonically increasing completion fraction in
// [0, 1]. Notifications are fire-and-forget and never affect the trial loop.
type ProgressFunc func(fraction float64)

// RunSimulation drives the full trial loop sequentially: one stream seeded
// once from the configured seed, drawn in trial order. Identical dataset,
// configuration and seed always yield a bit-identical result collection.
func RunSimulation(sim *models.Simulation, progress ProgressFunc) error {
	start := time.Now()
	if err := beginRun(sim); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(sim.Config.RandomSeed))
	fallbackDays := meanHoldingDays(sim.Investments)
	trialCount := sim.Config.TrialCount
	log.Println("Running", trialCount, "trials")

	sim.Results = make([]models.TrialResult, trialCount)
	step := progressStep(trialCount)
	for i := 0; i < trialCount; i++ {
		sim.Results[i] = runTrial(i, rng, sim.Config, sim.Investments, fallbackDays)
		if progress != nil && ((i+1)%step == 0 || i+1 == trialCount) {
			progress(float64(i+1) / float64(trialCount))
		}
	}

	finishRun(sim)
	log.Println("Execution Speed", time.Since(start))
	return nil
}

// RunSimulationParallel fans the trial loop out over worker goroutines. Each
// trial draws from its own stream derived from (seed, trial index), never a
// shared sequence, so the result at every index is identical regardless of
// worker count or scheduling order. Progress notifications are serialized and
// delivered with a strictly increasing fraction; the callback never runs
// concurrently with itself.
func RunSimulationParallel(sim *models.Simulation, workers int, progress ProgressFunc) error {
	start := time.Now()
	if err := beginRun(sim); err != nil {
		return err
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	fallbackDays := meanHoldingDays(sim.Investments)
	trialCount := sim.Config.TrialCount
	log.Println("Running", trialCount, "trials on", workers, "workers")

	sim.Results = make([]models.TrialResult, trialCount)
	step := progressStep(trialCount)
	chunk := (trialCount + workers - 1) / workers
	var completed int64
	var reported int64
	var progressMu sync.Mutex

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > trialCount {
			hi = trialCount
		}
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				rng := rand.New(rand.NewSource(trialSeed(sim.Config.RandomSeed, i)))
				sim.Results[i] = runTrial(i, rng, sim.Config, sim.Investments, fallbackDays)
				done := atomic.AddInt64(&completed, 1)
				if progress != nil && (done%int64(step) == 0 || done == int64(trialCount)) {
					progressMu.Lock()
					if done > reported {
						reported = done
						progress(float64(done) / float64(trialCount))
					}
					progressMu.Unlock()
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		sim.State = models.StateFailed
		return err
	}

	finishRun(sim)
	log.Println("Execution Speed", time.Since(start))
	return nil
}

// runTrial executes one resampled fund: sample, build cash flows, apply
// financial engineering, solve both IRRs.
func runTrial(id int, rng *rand.Rand, config models.SimulationConfig, investments []*models.Investment, fallbackDays int) models.TrialResult {
	portfolio := samplePortfolio(rng, config, investments)

	events := make(models.CashFlowSchedule, 0, len(portfolio)*2)
	yearsHeld := make([]float64, len(portfolio))
	totalInvested := 0.0
	for i, inv := range portfolio {
		flows := buildCashFlows(inv, positionSize, fallbackDays)
		events = append(events, flows...)
		yearsHeld[i] = float64(flows.FinalDay()) / 365.0
		totalInvested += positionSize
	}

	schedule := events.Merged()
	econ := applyFinancialEngineering(schedule, yearsHeld, totalInvested, config)
	grossIRR := solveIRR(econ.Gross)
	netIRR := solveIRR(econ.Net)

	return models.TrialResult{
		TrialID:        id,
		PortfolioSize:  len(portfolio),
		TotalInvested:  totalInvested,
		NetReturned:    econ.NetProceeds,
		GrossMOIC:      econ.GrossMOIC,
		NetMOIC:        econ.NetMOIC,
		GrossIRR:       grossIRR.Rate,
		NetIRR:         netIRR.Rate,
		LeverageAmount: econ.LeverageAmount,
		LeverageCost:   econ.LeverageCost,
		FeesPaid:       econ.FeesPaid,
		CarryPaid:      econ.CarryPaid,
		IRRConverged:   netIRR.Converged,
	}
}

// beginRun validates the setup and transitions the state machine. Validation
// failures are fatal before any trial executes.
func beginRun(sim *models.Simulation) error {
	sim.State = models.StateRunning
	problems := sim.Config.Validate()
	if len(sim.Investments) == 0 {
		problems = append(problems, "no historical investments loaded")
	}
	if len(problems) > 0 {
		sim.State = models.StateFailed
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func finishRun(sim *models.Simulation) {
	summarize(sim)
	sim.State = models.StateCompleted
}

// progressStep bounds the notification cadence to roughly every 1% of trials.
func progressStep(trialCount int) int {
	step := trialCount / 100
	if step < 1 {
		step = 1
	}
	return step
}

// trialSeed mixes the run seed with a trial index into an independent
// sub-stream seed. The mix is a fixed 64-bit finalizer so nearby indices do
// not produce correlated streams.
func trialSeed(seed int64, trial int) int64 {
	x := uint64(seed) + uint64(trial+1)*0x9e3779b97f4a7c15
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return int64(x)
}
