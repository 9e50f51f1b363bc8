package models

import "time"

// Distribution summarizes a numeric sample. Count 0 means no data and all
// other fields are 0.
type Distribution struct {
	Count   int     `json:"count"`
	Median  float64 `json:"median"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type CMAMetrics struct {
	CompCount          int          `json:"comp_count"`
	ActiveCount        int          `json:"active_count"`
	ClosedCount        int          `json:"closed_count"`
	PricePerSqft       Distribution `json:"price_per_sqft"`
	DaysOnMarket       Distribution `json:"days_on_market"`
	PriceReductionRate float64      `json:"price_reduction_rate"`
	AvgPriceReduction  float64      `json:"avg_price_reduction_percent"`
	Price              Distribution `json:"price"`
}

// Pricing recommendations.
const (
	Overpriced   = "overpriced"
	Underpriced  = "underpriced"
	FairlyPriced = "fairly priced"
)

type EstimatedValue struct {
	EstimatedPrice  float64  `json:"estimated_price"`
	CurrentPrice    *float64 `json:"current_price"`
	VariancePercent *float64 `json:"variance_percent"`
	Recommendation  string   `json:"recommendation,omitempty"`
}

type MarketContext struct {
	InventoryLevel  string `json:"inventory_level"`
	MarketType      string `json:"market_type"`
	Competitiveness string `json:"competitiveness"`
}

// RatedMetric is an investment ratio with its qualitative rating.
type RatedMetric struct {
	Value  float64 `json:"value"`
	Rating string  `json:"rating"`
}

type OnePercentRule struct {
	Passes       bool    `json:"passes"`
	RatioPercent float64 `json:"ratio_percent"`
}

type MonthlyExpenses struct {
	Mortgage           float64 `json:"mortgage"`
	PropertyTax        float64 `json:"property_tax"`
	Insurance          float64 `json:"insurance"`
	Maintenance        float64 `json:"maintenance"`
	HOA                float64 `json:"hoa"`
	Vacancy            float64 `json:"vacancy"`
	PropertyManagement float64 `json:"property_management"`
	Total              float64 `json:"total"`
}

type InvestmentMetrics struct {
	CashOnCashReturn    RatedMetric    `json:"cash_on_cash_return"`
	CapRate             RatedMetric    `json:"cap_rate"`
	OnePercentRule      OnePercentRule `json:"one_percent_rule"`
	GrossRentMultiplier RatedMetric    `json:"gross_rent_multiplier"`
	DebtServiceCoverage RatedMetric    `json:"debt_service_coverage_ratio"`
}

type InvestmentAnalysis struct {
	PurchasePrice      float64           `json:"purchase_price"`
	DownPayment        float64           `json:"down_payment"`
	LoanAmount         float64           `json:"loan_amount"`
	MonthlyMortgage    float64           `json:"monthly_mortgage"`
	MonthlyRent        float64           `json:"monthly_rent"`
	Expenses           MonthlyExpenses   `json:"monthly_expenses"`
	MonthlyCashFlow    float64           `json:"monthly_cash_flow"`
	AnnualCashFlow     float64           `json:"annual_cash_flow"`
	TotalCashInvested  float64           `json:"total_cash_invested"`
	NetOperatingIncome float64           `json:"net_operating_income"`
	Metrics            InvestmentMetrics `json:"metrics"`
}

type PropertySummary struct {
	ListingKey     string     `json:"listing_key"`
	ListingID      string     `json:"listing_id"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	Subdivision    string     `json:"subdivision"`
	Status         string     `json:"status"`
	ListPrice      *float64   `json:"list_price"`
	ClosePrice     *float64   `json:"close_price"`
	FinalPrice     *float64   `json:"final_price"`
	PricePerSqft   *float64   `json:"price_per_sqft"`
	Bedrooms       *int       `json:"beds"`
	Bathrooms      *float64   `json:"baths"`
	LivingArea     *float64   `json:"sqft"`
	LotSizeSqft    *float64   `json:"lot_size"`
	DaysOnMarket   *int       `json:"days_on_market"`
	YearBuilt      *int       `json:"year_built"`
	Pool           bool       `json:"pool"`
	Spa            bool       `json:"spa"`
	GarageSpaces   *float64   `json:"garage_spaces"`
	CloseDate      *time.Time `json:"close_date"`
	DistanceMiles  *float64   `json:"distance_miles,omitempty"`
	AssociationFee *float64   `json:"association_fee,omitempty"`
}

type CMAReport struct {
	Success            bool                `json:"success"`
	ReportID           string              `json:"report_id"`
	GeneratedAt        string              `json:"generated_at"`
	Subject            PropertySummary     `json:"subject"`
	SelectedProperties []PropertySummary   `json:"selected_properties"`
	Metrics            CMAMetrics          `json:"cma_metrics"`
	Comps              []PropertySummary   `json:"comparables"`
	EstimatedValue     *EstimatedValue     `json:"estimated_value"`
	Investment         *InvestmentAnalysis `json:"investment_analysis"`
	MarketContext      MarketContext       `json:"market_context"`
	GeneratedBy        string              `json:"generated_by"`
}
