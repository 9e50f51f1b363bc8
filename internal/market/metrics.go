package market

import (
	"jpsrealtor/cma/internal/models"
	"jpsrealtor/cma/internal/stats"
)

// Aggregate computes the CMA metrics over comps. An empty comp set yields
// zero counts and empty distributions.
func Aggregate(comps []models.Property) models.CMAMetrics {
	metrics := models.CMAMetrics{CompCount: len(comps)}

	var pricePerSqft, dom, prices, reductions []float64
	for i := range comps {
		c := &comps[i]

		switch {
		case c.IsActive():
			metrics.ActiveCount++
		case c.IsClosed():
			metrics.ClosedCount++
		}

		if ppsf, ok := c.PricePerSqft(); ok {
			pricePerSqft = append(pricePerSqft, ppsf)
		}
		if c.DaysOnMarket != nil {
			dom = append(dom, float64(*c.DaysOnMarket))
		}
		if price := c.FinalPrice(); price != nil && *price > 0 {
			prices = append(prices, *price)
		}
		if pct, ok := reductionPercent(c); ok {
			reductions = append(reductions, pct)
		}
	}

	metrics.PricePerSqft = stats.Summarize(pricePerSqft)
	metrics.DaysOnMarket = stats.Summarize(dom)
	metrics.Price = stats.Summarize(prices)

	if len(comps) > 0 {
		metrics.PriceReductionRate = float64(len(reductions)) / float64(len(comps)) * 100
	}
	metrics.AvgPriceReduction = stats.Mean(reductions)

	return metrics
}

// reductionPercent reports how far the list price dropped below the
// original list price.
func reductionPercent(p *models.Property) (float64, bool) {
	if p.OriginalPrice == nil || p.ListPrice == nil || *p.OriginalPrice <= 0 {
		return 0, false
	}
	original, current := *p.OriginalPrice, *p.ListPrice
	if original <= current {
		return 0, false
	}
	return (original - current) / original * 100, true
}
