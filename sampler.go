package fundsim

import (
	"math"
	"math/rand"

	gaussian "github.com/chobie/go-gaussian"

	"github.com/zmatula/Fund-Analysis-Platform-sub001/models"
)

// samplePortfolioSize draws a portfolio size from N(mean, std^2), rounds it
// and clamps it to [1, 2*datasetSize]. Out-of-range draws are clamped, not
// resampled, so the stream advances exactly once per trial.
func samplePortfolioSize(rng *rand.Rand, mean float64, std float64, datasetSize int) int {
	u := rng.Float64()
	// Ppf is undefined at the open ends of (0, 1).
	if u < 1e-12 {
		u = 1e-12
	}
	// A degenerate distribution always draws the mean. NewGaussian rejects
	// zero variance, and the uniform is still consumed so the stream
	// advances exactly once either way.
	draw := mean
	if std > 0 {
		draw = gaussian.NewGaussian(mean, std*std).Ppf(u)
	}
	size := int(math.Round(draw))
	if size < 1 {
		size = 1
	}
	if max := datasetSize * 2; size > max {
		size = max
	}
	return size
}

// samplePortfolio draws one trial's portfolio: a size draw followed by that
// many uniform index draws with replacement. Duplicates are expected and
// model concentration risk.
func samplePortfolio(rng *rand.Rand, config models.SimulationConfig, investments []*models.Investment) []*models.Investment {
	size := samplePortfolioSize(rng, config.PortfolioSizeMean, config.PortfolioSizeStd, len(investments))
	selected := make([]*models.Investment, size)
	for i := range selected {
		selected[i] = investments[rng.Intn(len(investments))]
	}
	return selected
}
