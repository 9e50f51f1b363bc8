// Package investment models the rental performance of a purchase.
package investment

import (
	"math"

	"jpsrealtor/cma/internal/models"
)

// ClosingCostRate is the share of price added to the cash invested.
const ClosingCostRate = 0.03

// MonthlyPayment is the fixed-rate amortized payment on loan over termMonths
// at annualRate percent. A zero rate divides the loan evenly.
func MonthlyPayment(loan, annualRate float64, termMonths int) float64 {
	if loan <= 0 || termMonths <= 0 {
		return 0
	}
	n := float64(termMonths)
	r := annualRate / 12 / 100
	if r == 0 {
		return loan / n
	}
	growth := math.Pow(1+r, n)
	return loan * r * growth / (growth - 1)
}

// Analyze returns nil when price is missing or not positive.
func Analyze(price, hoa *float64, a Assumptions) *models.InvestmentAnalysis {
	if price == nil || *price <= 0 {
		return nil
	}
	p := *price

	downPayment := p * (a.DownPaymentPercent / 100)
	loan := p - downPayment
	mortgage := MonthlyPayment(loan, a.InterestRate, a.LoanTermYears*12)

	rent := p * a.RentToValueRatio
	if a.EstimatedRent != nil {
		rent = *a.EstimatedRent
	}

	expenses := models.MonthlyExpenses{
		Mortgage:           mortgage,
		PropertyTax:        p * a.PropertyTaxRate / 100 / 12,
		Insurance:          a.AnnualInsurance / 12,
		Maintenance:        p * a.MaintenanceRate / 100 / 12,
		Vacancy:            rent * a.VacancyRate / 100,
		PropertyManagement: rent * a.ManagementFee / 100,
	}
	if hoa != nil && *hoa > 0 {
		expenses.HOA = *hoa
	}
	operating := expenses.PropertyTax + expenses.Insurance + expenses.Maintenance +
		expenses.HOA + expenses.Vacancy + expenses.PropertyManagement
	expenses.Total = mortgage + operating

	monthlyCashFlow := rent - expenses.Total
	annualCashFlow := monthlyCashFlow * 12
	cashInvested := downPayment + p*ClosingCostRate
	noi := (rent - operating) * 12
	annualDebt := mortgage * 12

	analysis := &models.InvestmentAnalysis{
		PurchasePrice:      p,
		DownPayment:        downPayment,
		LoanAmount:         loan,
		MonthlyMortgage:    mortgage,
		MonthlyRent:        rent,
		Expenses:           expenses,
		MonthlyCashFlow:    monthlyCashFlow,
		AnnualCashFlow:     annualCashFlow,
		TotalCashInvested:  cashInvested,
		NetOperatingIncome: noi,
	}

	cashOnCash := annualCashFlow / cashInvested * 100
	analysis.Metrics.CashOnCashReturn = models.RatedMetric{Value: cashOnCash, Rating: CashOnCashRatings.Rate(cashOnCash)}

	capRate := noi / p * 100
	analysis.Metrics.CapRate = models.RatedMetric{Value: capRate, Rating: CapRateRatings.Rate(capRate)}

	analysis.Metrics.OnePercentRule = models.OnePercentRule{
		Passes:       rent >= p*0.01,
		RatioPercent: rent / p * 100,
	}

	analysis.Metrics.GrossRentMultiplier = models.RatedMetric{Rating: NotApplicable}
	if rent > 0 {
		grm := p / (rent * 12)
		analysis.Metrics.GrossRentMultiplier = models.RatedMetric{Value: grm, Rating: GRMRatings.Rate(grm)}
	}

	analysis.Metrics.DebtServiceCoverage = models.RatedMetric{Rating: NotApplicable}
	if annualDebt > 0 {
		dscr := noi / annualDebt
		analysis.Metrics.DebtServiceCoverage = models.RatedMetric{Value: dscr, Rating: DSCRRatings.Rate(dscr)}
	}

	return analysis
}
