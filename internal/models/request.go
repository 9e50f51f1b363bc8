package models

// SubjectInput is a caller-supplied property in "selected properties" mode.
// Price is the canonical field and ListPrice the legacy one; Price wins when
// both are set. The order is kept from existing callers and has not been
// confirmed by the listing data owners.
type SubjectInput struct {
	ListingKey      string   `json:"listing_key"`
	ListingID       string   `json:"listing_id"`
	UnparsedAddress string   `json:"unparsed_address"`
	City            string   `json:"city"`
	SubdivisionName string   `json:"subdivision_name"`
	ListPrice       *float64 `json:"list_price"`
	Price           *float64 `json:"price"`
	Bedrooms        *int     `json:"bedrooms_total"`
	Bathrooms       *float64 `json:"bathrooms_total"`
	LivingArea      *float64 `json:"living_area"`
	LotSizeSqft     *float64 `json:"lot_size_sqft"`
	YearBuilt       *int     `json:"year_built"`
	Pool            bool     `json:"pool_yn"`
	Spa             bool     `json:"spa_yn"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	AssociationFee  *float64 `json:"association_fee"`
}

// ToProperty resolves the price fallback once so the engine only sees ListPrice.
func (s SubjectInput) ToProperty() Property {
	price := s.Price
	if price == nil {
		price = s.ListPrice
	}
	return Property{
		ListingKey:      s.ListingKey,
		ListingID:       s.ListingID,
		UnparsedAddress: s.UnparsedAddress,
		City:            s.City,
		SubdivisionName: s.SubdivisionName,
		PropertyType:    PropertyTypeResidential,
		ListPrice:       price,
		Bedrooms:        s.Bedrooms,
		Bathrooms:       s.Bathrooms,
		LivingArea:      s.LivingArea,
		LotSizeSqft:     s.LotSizeSqft,
		YearBuilt:       s.YearBuilt,
		Pool:            s.Pool,
		Spa:             s.Spa,
		Latitude:        s.Latitude,
		Longitude:       s.Longitude,
		AssociationFee:  s.AssociationFee,
	}
}

// Tolerances are the caller overrides for comparable matching. Nil means default.
type Tolerances struct {
	RadiusMiles   *float64 `json:"radius_miles" yaml:"radius_miles"`
	BedTolerance  *int     `json:"bed_tolerance" yaml:"bed_tolerance"`
	BathTolerance *float64 `json:"bath_tolerance" yaml:"bath_tolerance"`
	SqftTolerance *float64 `json:"sqft_tolerance" yaml:"sqft_tolerance"`
	MaxComps      *int     `json:"max_comps" yaml:"max_comps"`
	IncludeClosed *bool    `json:"include_closed" yaml:"include_closed"`
}

// AssumptionOverrides are the caller overrides for the investment analysis.
type AssumptionOverrides struct {
	DownPaymentPercent *float64 `json:"down_payment_percent" yaml:"down_payment_percent"`
	InterestRate       *float64 `json:"interest_rate" yaml:"interest_rate"`
	LoanTermYears      *int     `json:"loan_term_years" yaml:"loan_term_years"`
	RentToValueRatio   *float64 `json:"rent_to_value_ratio" yaml:"rent_to_value_ratio"`
	EstimatedRent      *float64 `json:"estimated_rent" yaml:"estimated_rent"`
	PropertyTaxRate    *float64 `json:"property_tax_rate" yaml:"property_tax_rate"`
	AnnualInsurance    *float64 `json:"annual_insurance" yaml:"annual_insurance"`
	MaintenanceRate    *float64 `json:"maintenance_rate" yaml:"maintenance_rate"`
	VacancyRate        *float64 `json:"vacancy_rate" yaml:"vacancy_rate"`
	ManagementFee      *float64 `json:"management_fee" yaml:"management_fee"`
}

// CMARequest is the body of POST /api/cma.
type CMARequest struct {
	Tolerances
	ListingKey         string               `json:"listing_key"`
	Slug               string               `json:"slug"`
	SelectedProperties []SubjectInput       `json:"selected_properties"`
	City               string               `json:"city"`
	Subdivision        string               `json:"subdivision"`
	IncludeInvestment  bool                 `json:"include_investment"`
	Assumptions        *AssumptionOverrides `json:"investment_assumptions"`
	UserEmail          string               `json:"-"`
}

// BatchCMARequest is the body of POST /api/cma/batch.
type BatchCMARequest struct {
	Requests []CMARequest `json:"requests"`
}

// Merge fills unset fields from fallback.
func (t Tolerances) Merge(fallback Tolerances) Tolerances {
	if t.RadiusMiles == nil {
		t.RadiusMiles = fallback.RadiusMiles
	}
	if t.BedTolerance == nil {
		t.BedTolerance = fallback.BedTolerance
	}
	if t.BathTolerance == nil {
		t.BathTolerance = fallback.BathTolerance
	}
	if t.SqftTolerance == nil {
		t.SqftTolerance = fallback.SqftTolerance
	}
	if t.MaxComps == nil {
		t.MaxComps = fallback.MaxComps
	}
	if t.IncludeClosed == nil {
		t.IncludeClosed = fallback.IncludeClosed
	}
	return t
}

// Merge fills unset fields from fallback.
func (a AssumptionOverrides) Merge(fallback AssumptionOverrides) AssumptionOverrides {
	if a.DownPaymentPercent == nil {
		a.DownPaymentPercent = fallback.DownPaymentPercent
	}
	if a.InterestRate == nil {
		a.InterestRate = fallback.InterestRate
	}
	if a.LoanTermYears == nil {
		a.LoanTermYears = fallback.LoanTermYears
	}
	if a.RentToValueRatio == nil {
		a.RentToValueRatio = fallback.RentToValueRatio
	}
	if a.EstimatedRent == nil {
		a.EstimatedRent = fallback.EstimatedRent
	}
	if a.PropertyTaxRate == nil {
		a.PropertyTaxRate = fallback.PropertyTaxRate
	}
	if a.AnnualInsurance == nil {
		a.AnnualInsurance = fallback.AnnualInsurance
	}
	if a.MaintenanceRate == nil {
		a.MaintenanceRate = fallback.MaintenanceRate
	}
	if a.VacancyRate == nil {
		a.VacancyRate = fallback.VacancyRate
	}
	if a.ManagementFee == nil {
		a.ManagementFee = fallback.ManagementFee
	}
	return a
}
