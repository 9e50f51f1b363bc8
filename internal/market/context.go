package market

import "jpsrealtor/cma/internal/models"

// Threshold maps values strictly below Below to Label. The last entry of a
// table is the fallback and its Below is ignored.
type Threshold struct {
	Below float64
	Label string
}

var (
	InventoryLevels = []Threshold{
		{Below: 5, Label: "low"},
		{Below: 15, Label: "moderate"},
		{Label: "high"},
	}

	MarketTypes = []Threshold{
		{Below: 30, Label: "seller's market"},
		{Below: 60, Label: "balanced market"},
		{Label: "buyer's market"},
	}

	CompetitivenessLevels = []Threshold{
		{Below: 15, Label: "highly competitive"},
		{Below: 30, Label: "moderately competitive"},
		{Label: "less competitive"},
	}
)

// Classify returns the first label whose bound value is under.
func Classify(value float64, table []Threshold) string {
	for i, t := range table {
		if i == len(table)-1 || value < t.Below {
			return t.Label
		}
	}
	return ""
}

// Context labels the market from the aggregated metrics.
func Context(metrics models.CMAMetrics) models.MarketContext {
	return models.MarketContext{
		InventoryLevel:  Classify(float64(metrics.CompCount), InventoryLevels),
		MarketType:      Classify(metrics.DaysOnMarket.Average, MarketTypes),
		Competitiveness: Classify(metrics.PriceReductionRate, CompetitivenessLevels),
	}
}
