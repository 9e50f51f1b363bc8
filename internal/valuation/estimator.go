// Package valuation estimates a subject's value from comparable price per sqft.
package valuation

import "jpsrealtor/cma/internal/models"

// VarianceBand is the +/- percentage inside which a listing is fairly priced.
const VarianceBand = 5.0

type recommendationRule struct {
	matches func(variance float64) bool
	label   string
}

var recommendations = []recommendationRule{
	{matches: func(v float64) bool { return v > VarianceBand }, label: models.Overpriced},
	{matches: func(v float64) bool { return v < -VarianceBand }, label: models.Underpriced},
	{matches: func(float64) bool { return true }, label: models.FairlyPriced},
}

// Recommend classifies a signed variance percentage.
func Recommend(variance float64) string {
	for _, r := range recommendations {
		if r.matches(variance) {
			return r.label
		}
	}
	return models.FairlyPriced
}

// Estimate returns nil unless both a median price per sqft and a subject
// living area are available. Without a current price only the estimate is set.
func Estimate(livingArea, currentPrice *float64, metrics models.CMAMetrics) *models.EstimatedValue {
	if livingArea == nil || *livingArea <= 0 {
		return nil
	}
	if metrics.PricePerSqft.Count == 0 || metrics.PricePerSqft.Median <= 0 {
		return nil
	}

	estimate := &models.EstimatedValue{
		EstimatedPrice: metrics.PricePerSqft.Median * *livingArea,
	}
	if currentPrice == nil || *currentPrice <= 0 {
		return estimate
	}

	price := *currentPrice
	variance := (estimate.EstimatedPrice - price) / price * 100
	estimate.CurrentPrice = &price
	estimate.VariancePercent = &variance
	estimate.Recommendation = Recommend(variance)
	return estimate
}
