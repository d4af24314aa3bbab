package fundsim

import (
	"fmt"
	"math"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

const (
	// Nominal allocation per sampled position, the unit investment sizing
	// convention for the whole engine.
	positionSize = 1000000.0

	// Fallback holding period when the dataset carries no usable dates.
	defaultHoldingDays = 365

	// Floor applied to IRR before it reaches a logarithm or a discount
	// factor. Keeps ln(1+IRR) and (1+IRR)^t defined.
	irrFloor = -0.9999
)

// Exit profiles for converting a (MOIC, IRR) pair into cash flows. The
// profile is resolved once per investment so the holding period formula stays
// auditable.
type exitProfile int

const (
	profileNormal exitProfile = iota
	profileTotalLoss
	profileClampedIRR
)

func resolveExitProfile(moic float64, irr float64) exitProfile {
	if moic == 0 {
		return profileTotalLoss
	}
	if irr <= -1.0 {
		return profileClampedIRR
	}
	return profileNormal
}

// holdingPeriodDays inverts the compounding relationship
// days = 365 * ln(MOIC) / ln(1+IRR), minimum one day. Total losses and
// clamped IRRs have no usable decay relationship and take fallbackDays.
func holdingPeriodDays(moic float64, irr float64, fallbackDays int) int {
	switch resolveExitProfile(moic, irr) {
	case profileTotalLoss, profileClampedIRR:
		return fallbackDays
	}
	days := 365.0 * math.Log(moic) / math.Log(1.0+irr)
	if math.IsNaN(days) || math.IsInf(days, 0) {
		return fallbackDays
	}
	rounded := int(math.Round(days))
	if rounded < 1 {
		rounded = 1
	}
	return rounded
}

// buildCashFlows produces the two events for one position: the entry outflow
// at day 0 and the exit inflow at the computed day offset. A total loss exits
// at zero.
func buildCashFlows(inv *models.Investment, allocation float64, fallbackDays int) models.CashFlowSchedule {
	if inv.MOIC < 0 {
		panic(fmt.Sprintf("negative MOIC %v for %v slipped past import validation", inv.MOIC, inv.InvestmentName))
	}
	exitDay := holdingPeriodDays(inv.MOIC, inv.IRR, fallbackDays)
	return models.CashFlowSchedule{
		{Day: 0, Amount: -allocation},
		{Day: exitDay, Amount: allocation * inv.MOIC},
	}
}

// meanHoldingDays is the dataset average used as the fallback holding period.
func meanHoldingDays(investments []*models.Investment) int {
	total := 0
	counted := 0
	for _, inv := range investments {
		if days := inv.DaysHeld(); days > 0 {
			total += days
			counted++
		}
	}
	if counted == 0 {
		return defaultHoldingDays
	}
	return total / counted
}
