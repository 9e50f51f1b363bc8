package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jpsrealtor/cma/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		table    []Threshold
		expected string
	}{
		{name: "No inventory", value: 0, table: InventoryLevels, expected: "low"},
		{name: "Low inventory", value: 4, table: InventoryLevels, expected: "low"},
		{name: "Moderate inventory", value: 5, table: InventoryLevels, expected: "moderate"},
		{name: "High inventory", value: 15, table: InventoryLevels, expected: "high"},
		{name: "Seller's market", value: 29.9, table: MarketTypes, expected: "seller's market"},
		{name: "Balanced market", value: 30, table: MarketTypes, expected: "balanced market"},
		{name: "Buyer's market", value: 60, table: MarketTypes, expected: "buyer's market"},
		{name: "Highly competitive", value: 14, table: CompetitivenessLevels, expected: "highly competitive"},
		{name: "Moderately competitive", value: 15, table: CompetitivenessLevels, expected: "moderately competitive"},
		{name: "Less competitive", value: 30, table: CompetitivenessLevels, expected: "less competitive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.value, tt.table))
		})
	}
}

func TestContext(t *testing.T) {
	metrics := models.CMAMetrics{
		CompCount:          12,
		DaysOnMarket:       models.Distribution{Count: 12, Average: 75},
		PriceReductionRate: 20,
	}

	ctx := Context(metrics)

	assert.Equal(t, "moderate", ctx.InventoryLevel)
	assert.Equal(t, "buyer's market", ctx.MarketType)
	assert.Equal(t, "moderately competitive", ctx.Competitiveness)
}

func TestContextEmptyMetrics(t *testing.T) {
	ctx := Context(Aggregate(nil))

	assert.Equal(t, "low", ctx.InventoryLevel)
	assert.Equal(t, "seller's market", ctx.MarketType)
	assert.Equal(t, "highly competitive", ctx.Competitiveness)
}
