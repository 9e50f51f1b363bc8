package report

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/shopspring/decimal"

	"jpsrealtor/cma/internal/models"
)

const metersPerMile = 1609.344

// round2 rounds a currency or percentage value for display.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}

// summarize projects a property into its report form. origin, when set, is
// used to report the distance in miles.
func summarize(p models.Property, origin *orb.Point) models.PropertySummary {
	s := models.PropertySummary{
		ListingKey:     p.ListingKey,
		ListingID:      p.ListingID,
		Address:        p.UnparsedAddress,
		City:           p.City,
		Subdivision:    p.SubdivisionName,
		Status:         p.StandardStatus,
		ListPrice:      p.ListPrice,
		ClosePrice:     p.ClosePrice,
		FinalPrice:     p.FinalPrice(),
		Bedrooms:       p.Bedrooms,
		Bathrooms:      p.Bathrooms,
		LivingArea:     p.LivingArea,
		LotSizeSqft:    p.LotSizeSqft,
		DaysOnMarket:   p.DaysOnMarket,
		YearBuilt:      p.YearBuilt,
		Pool:           p.Pool,
		Spa:            p.Spa,
		GarageSpaces:   p.GarageSpaces,
		CloseDate:      p.CloseDate,
		AssociationFee: p.AssociationFee,
	}
	if ppsf, ok := p.PricePerSqft(); ok {
		s.PricePerSqft = round2Ptr(&ppsf)
	}
	if origin != nil && p.HasCoordinates() {
		miles := geo.Distance(*origin, orb.Point{*p.Longitude, *p.Latitude}) / metersPerMile
		s.DistanceMiles = round2Ptr(&miles)
	}
	return s
}

func roundDistribution(d models.Distribution) models.Distribution {
	return models.Distribution{
		Count:   d.Count,
		Median:  round2(d.Median),
		Average: round2(d.Average),
		Min:     round2(d.Min),
		Max:     round2(d.Max),
	}
}

func roundMetrics(m models.CMAMetrics) models.CMAMetrics {
	m.PricePerSqft = roundDistribution(m.PricePerSqft)
	m.DaysOnMarket = roundDistribution(m.DaysOnMarket)
	m.Price = roundDistribution(m.Price)
	m.PriceReductionRate = round2(m.PriceReductionRate)
	m.AvgPriceReduction = round2(m.AvgPriceReduction)
	return m
}

func roundEstimate(e *models.EstimatedValue) *models.EstimatedValue {
	if e == nil {
		return nil
	}
	return &models.EstimatedValue{
		EstimatedPrice:  round2(e.EstimatedPrice),
		CurrentPrice:    e.CurrentPrice,
		VariancePercent: round2Ptr(e.VariancePercent),
		Recommendation:  e.Recommendation,
	}
}

func roundRated(m models.RatedMetric) models.RatedMetric {
	return models.RatedMetric{Value: round2(m.Value), Rating: m.Rating}
}

func roundInvestment(a *models.InvestmentAnalysis) *models.InvestmentAnalysis {
	if a == nil {
		return nil
	}
	out := *a
	out.PurchasePrice = round2(a.PurchasePrice)
	out.DownPayment = round2(a.DownPayment)
	out.LoanAmount = round2(a.LoanAmount)
	out.MonthlyMortgage = round2(a.MonthlyMortgage)
	out.MonthlyRent = round2(a.MonthlyRent)
	out.Expenses = models.MonthlyExpenses{
		Mortgage:           round2(a.Expenses.Mortgage),
		PropertyTax:        round2(a.Expenses.PropertyTax),
		Insurance:          round2(a.Expenses.Insurance),
		Maintenance:        round2(a.Expenses.Maintenance),
		HOA:                round2(a.Expenses.HOA),
		Vacancy:            round2(a.Expenses.Vacancy),
		PropertyManagement: round2(a.Expenses.PropertyManagement),
		Total:              round2(a.Expenses.Total),
	}
	out.MonthlyCashFlow = round2(a.MonthlyCashFlow)
	out.AnnualCashFlow = round2(a.AnnualCashFlow)
	out.TotalCashInvested = round2(a.TotalCashInvested)
	out.NetOperatingIncome = round2(a.NetOperatingIncome)
	out.Metrics.CashOnCashReturn = roundRated(a.Metrics.CashOnCashReturn)
	out.Metrics.CapRate = roundRated(a.Metrics.CapRate)
	out.Metrics.OnePercentRule.RatioPercent = round2(a.Metrics.OnePercentRule.RatioPercent)
	out.Metrics.GrossRentMultiplier = roundRated(a.Metrics.GrossRentMultiplier)
	out.Metrics.DebtServiceCoverage = roundRated(a.Metrics.DebtServiceCoverage)
	return &out
}
