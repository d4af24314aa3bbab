package models

// The TrialResult struct contains the outcome of one simulated fund, one row
// per trial in exports and the results store.
type TrialResult struct {
	TrialID        int     `csv:"trial_id" db:"trial_id"`
	PortfolioSize  int     `csv:"portfolio_size" db:"portfolio_size"`
	TotalInvested  float64 `csv:"total_invested" db:"total_invested"`
	NetReturned    float64 `csv:"net_returned" db:"net_returned"`
	GrossMOIC      float64 `csv:"gross_moic" db:"gross_moic"`
	NetMOIC        float64 `csv:"net_moic" db:"net_moic"`
	GrossIRR       float64 `csv:"gross_irr" db:"gross_irr"`
	NetIRR         float64 `csv:"net_irr" db:"net_irr"`
	LeverageAmount float64 `csv:"leverage_amount" db:"leverage_amount"`
	LeverageCost   float64 `csv:"leverage_cost" db:"leverage_cost"`
	FeesPaid       float64 `csv:"fees_paid" db:"fees_paid"`
	CarryPaid      float64 `csv:"carry_paid" db:"carry_paid"`
	IRRConverged   bool    `csv:"irr_converged" db:"irr_converged"`
}
