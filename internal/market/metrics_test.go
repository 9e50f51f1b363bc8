package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"jpsrealtor/cma/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func closedComp(key string, closePrice, sqft float64) models.Property {
	return models.Property{
		ListingKey:     key,
		StandardStatus: models.StatusClosed,
		ClosePrice:     floatPtr(closePrice),
		ListPrice:      floatPtr(closePrice + 5000),
		LivingArea:     floatPtr(sqft),
	}
}

func TestAggregateEmpty(t *testing.T) {
	metrics := Aggregate(nil)

	assert.Equal(t, 0, metrics.CompCount)
	assert.Equal(t, 0, metrics.ActiveCount)
	assert.Equal(t, 0, metrics.ClosedCount)
	assert.Equal(t, models.Distribution{}, metrics.PricePerSqft)
	assert.Equal(t, models.Distribution{}, metrics.DaysOnMarket)
	assert.Equal(t, models.Distribution{}, metrics.Price)
	assert.Equal(t, 0.0, metrics.PriceReductionRate)
	assert.False(t, math.IsNaN(metrics.AvgPriceReduction))
}

func TestAggregatePricePerSqft(t *testing.T) {
	comps := []models.Property{
		closedComp("1", 480000, 2000),
		closedComp("2", 490000, 2000),
		closedComp("3", 500000, 2000),
		closedComp("4", 510000, 2000),
		closedComp("5", 520000, 2000),
	}

	metrics := Aggregate(comps)

	assert.Equal(t, 5, metrics.CompCount)
	assert.Equal(t, 5, metrics.ClosedCount)
	assert.Equal(t, 5, metrics.PricePerSqft.Count)
	assert.Equal(t, 250.0, metrics.PricePerSqft.Median)
	assert.Equal(t, 240.0, metrics.PricePerSqft.Min)
	assert.Equal(t, 260.0, metrics.PricePerSqft.Max)
	assert.Equal(t, 500000.0, metrics.Price.Median)
}

func TestAggregateFallsBackToListPrice(t *testing.T) {
	comps := []models.Property{
		{ListingKey: "A", StandardStatus: models.StatusActive, ListPrice: floatPtr(300000), LivingArea: floatPtr(1000)},
		{ListingKey: "B", StandardStatus: models.StatusPending, ListPrice: floatPtr(400000)},
		{ListingKey: "C", StandardStatus: models.StatusSold, LivingArea: floatPtr(1000)},
	}

	metrics := Aggregate(comps)

	assert.Equal(t, 3, metrics.CompCount)
	assert.Equal(t, 1, metrics.ActiveCount)
	assert.Equal(t, 1, metrics.ClosedCount)
	assert.Equal(t, 1, metrics.PricePerSqft.Count)
	assert.Equal(t, 300.0, metrics.PricePerSqft.Median)
	assert.Equal(t, 2, metrics.Price.Count)
	assert.Equal(t, 350000.0, metrics.Price.Average)
}

func TestAggregateDaysOnMarketSkipsMissing(t *testing.T) {
	comps := []models.Property{
		{DaysOnMarket: intPtr(10)},
		{DaysOnMarket: intPtr(20)},
		{},
	}

	metrics := Aggregate(comps)

	assert.Equal(t, 2, metrics.DaysOnMarket.Count)
	assert.Equal(t, 15.0, metrics.DaysOnMarket.Average)
	assert.Equal(t, 15.0, metrics.DaysOnMarket.Median)
}

func TestAggregatePriceReductions(t *testing.T) {
	comps := []models.Property{
		{OriginalPrice: floatPtr(500000), ListPrice: floatPtr(450000)},
		{OriginalPrice: floatPtr(400000), ListPrice: floatPtr(380000)},
		{OriginalPrice: floatPtr(300000), ListPrice: floatPtr(300000)},
		{ListPrice: floatPtr(250000)},
	}

	metrics := Aggregate(comps)

	assert.Equal(t, 50.0, metrics.PriceReductionRate)
	assert.InDelta(t, 7.5, metrics.AvgPriceReduction, 1e-9)
}
