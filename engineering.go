package fundsim

import (
	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

// trialEconomics carries a trial's fund-level cash flows after financial
// engineering, plus the cost breakdown reported on the TrialResult.
type trialEconomics struct {
	Gross models.CashFlowSchedule // levered basis, total capital deployed
	Net   models.CashFlowSchedule // LP basis after costs

	TotalInvested  float64 // LP capital
	TotalCapital   float64 // LP capital plus leverage
	GrossProceeds  float64
	NetProceeds    float64
	LeverageAmount float64
	LeverageCost   float64
	FeesPaid       float64
	CarryPaid      float64
	GrossMOIC      float64
	NetMOIC        float64
}

// applyFinancialEngineering turns a merged LP-basis schedule into fund-level
// gross and net schedules. Leverage is deployed pro-rata across every
// position and exits pro-rata, so gross proceeds scale by total/LP capital.
// Leverage cost and management fees accrue per position weighted by its years
// held; the hurdle runs over the portfolio's terminal horizon. Net proceeds
// may be negative and are reported as-is.
func applyFinancialEngineering(schedule models.CashFlowSchedule, yearsHeld []float64, totalInvested float64, config models.SimulationConfig) trialEconomics {
	econ := trialEconomics{TotalInvested: totalInvested}

	econ.LeverageAmount = totalInvested * config.LeverageRate
	econ.TotalCapital = totalInvested + econ.LeverageAmount
	scale := econ.TotalCapital / totalInvested

	econ.Gross = make(models.CashFlowSchedule, len(schedule))
	for i, event := range schedule {
		econ.Gross[i] = models.CashFlowEvent{Day: event.Day, Amount: event.Amount * scale}
	}
	econ.GrossProceeds = econ.Gross.Inflows()

	positions := float64(len(yearsHeld))
	leveragePerPosition := econ.LeverageAmount / positions
	capitalPerPosition := econ.TotalCapital / positions
	for _, years := range yearsHeld {
		econ.LeverageCost += leveragePerPosition * config.CostOfCapital * years
		econ.FeesPaid += capitalPerPosition * config.FeeRate * years
	}

	horizonYears := float64(schedule.FinalDay()) / 365.0
	hurdleReturn := econ.TotalCapital * (1 + config.HurdleRate*horizonYears)
	if excess := econ.GrossProceeds - hurdleReturn; excess > 0 {
		econ.CarryPaid = excess * config.CarryRate
	}

	econ.NetProceeds = econ.GrossProceeds - econ.LeverageCost - econ.FeesPaid - econ.CarryPaid

	// Net schedule: timing preserved, every inflow scaled so the total
	// inflow equals net proceeds; outflows revert to the LP basis.
	reduction := 0.0
	if econ.GrossProceeds > 0 {
		reduction = econ.NetProceeds / econ.GrossProceeds
	}
	econ.Net = make(models.CashFlowSchedule, len(schedule))
	for i, event := range schedule {
		amount := event.Amount
		if amount > 0 {
			amount = amount * scale * reduction
		}
		econ.Net[i] = models.CashFlowEvent{Day: event.Day, Amount: amount}
	}

	econ.GrossMOIC = econ.GrossProceeds / econ.TotalCapital
	econ.NetMOIC = econ.NetProceeds / totalInvested
	return econ
}
