package fundsim

import (
	"math"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

const (
	irrInitialGuess  = 0.10
	irrTolerance     = 1e-6
	irrMaxIterations = 100
	irrCeiling       = 10.0
)

// irrResult carries the solved rate together with a convergence flag, so a
// pathological trial keeps its best-effort IRR instead of aborting the run.
type irrResult struct {
	Rate      float64
	Converged bool
}

// solveIRR runs Newton-Raphson on NPV(r) = sum CF_i / (1+r)^(day_i/365),
// seeded at 10%. The rate is kept inside [irrFloor, irrCeiling]; when the
// derivative dies or the iteration cap is hit, the iterate with the lowest
// |NPV| seen so far is returned unconverged.
func solveIRR(schedule models.CashFlowSchedule) irrResult {
	rate := irrInitialGuess
	bestRate := rate
	bestNPV := math.Inf(1)

	for i := 0; i < irrMaxIterations; i++ {
		npv, derivative := netPresentValue(schedule, rate)
		if abs := math.Abs(npv); abs < bestNPV {
			bestNPV = abs
			bestRate = rate
		}
		if math.Abs(npv) < irrTolerance {
			return irrResult{Rate: rate, Converged: true}
		}
		if derivative == 0 || math.IsNaN(derivative) {
			break
		}
		rate = rate - npv/derivative
		if math.IsNaN(rate) {
			break
		}
		if rate < irrFloor {
			rate = irrFloor
		} else if rate > irrCeiling {
			rate = irrCeiling
		}
	}
	return irrResult{Rate: bestRate, Converged: false}
}

// netPresentValue evaluates the NPV of a schedule at a rate along with its
// derivative with respect to the rate.
func netPresentValue(schedule models.CashFlowSchedule, rate float64) (npv float64, derivative float64) {
	for _, event := range schedule {
		years := float64(event.Day) / 365.0
		discount := math.Pow(1+rate, years)
		npv += event.Amount / discount
		derivative -= years * event.Amount / (discount * (1 + rate))
	}
	return npv, derivative
}
