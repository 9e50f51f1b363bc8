package investment

import (
	"errors"
	"fmt"

	"jpsrealtor/cma/internal/models"
)

var ErrInvalidAssumption = errors.New("invalid investment assumption")

// Assumptions are the fully resolved inputs of the analysis. Rates are
// percentages except RentToValueRatio, which is a fraction of price.
// EstimatedRent replaces price * RentToValueRatio when set.
type Assumptions struct {
	DownPaymentPercent float64
	InterestRate       float64
	LoanTermYears      int
	RentToValueRatio   float64
	EstimatedRent      *float64
	PropertyTaxRate    float64
	AnnualInsurance    float64
	MaintenanceRate    float64
	VacancyRate        float64
	ManagementFee      float64
}

// DefaultAssumptions returns the built-in assumption set.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		DownPaymentPercent: 20,
		InterestRate:       7.0,
		LoanTermYears:      30,
		RentToValueRatio:   0.008,
		PropertyTaxRate:    1.25,
		AnnualInsurance:    1200,
		MaintenanceRate:    1,
		VacancyRate:        8,
		ManagementFee:      10,
	}
}

// NewAssumptions applies overrides on top of the defaults.
func NewAssumptions(o models.AssumptionOverrides) Assumptions {
	a := DefaultAssumptions()
	if o.DownPaymentPercent != nil {
		a.DownPaymentPercent = *o.DownPaymentPercent
	}
	if o.InterestRate != nil {
		a.InterestRate = *o.InterestRate
	}
	if o.LoanTermYears != nil {
		a.LoanTermYears = *o.LoanTermYears
	}
	if o.RentToValueRatio != nil {
		a.RentToValueRatio = *o.RentToValueRatio
	}
	if o.EstimatedRent != nil {
		rent := *o.EstimatedRent
		a.EstimatedRent = &rent
	}
	if o.PropertyTaxRate != nil {
		a.PropertyTaxRate = *o.PropertyTaxRate
	}
	if o.AnnualInsurance != nil {
		a.AnnualInsurance = *o.AnnualInsurance
	}
	if o.MaintenanceRate != nil {
		a.MaintenanceRate = *o.MaintenanceRate
	}
	if o.VacancyRate != nil {
		a.VacancyRate = *o.VacancyRate
	}
	if o.ManagementFee != nil {
		a.ManagementFee = *o.ManagementFee
	}
	return a
}

func (a Assumptions) Validate() error {
	if a.DownPaymentPercent < 0 || a.DownPaymentPercent > 100 {
		return fmt.Errorf("%w: down_payment_percent must be between 0 and 100", ErrInvalidAssumption)
	}
	if a.LoanTermYears < 1 {
		return fmt.Errorf("%w: loan_term_years must be at least 1", ErrInvalidAssumption)
	}
	if a.EstimatedRent != nil && *a.EstimatedRent < 0 {
		return fmt.Errorf("%w: estimated_rent must not be negative", ErrInvalidAssumption)
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"interest_rate", a.InterestRate},
		{"rent_to_value_ratio", a.RentToValueRatio},
		{"property_tax_rate", a.PropertyTaxRate},
		{"annual_insurance", a.AnnualInsurance},
		{"maintenance_rate", a.MaintenanceRate},
		{"vacancy_rate", a.VacancyRate},
		{"management_fee", a.ManagementFee},
	}
	for _, r := range rates {
		if r.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidAssumption, r.name)
		}
	}
	return nil
}
