package report

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"jpsrealtor/cma/internal/comps"
	"jpsrealtor/cma/internal/investment"
	"jpsrealtor/cma/internal/market"
	"jpsrealtor/cma/internal/models"
	"jpsrealtor/cma/internal/valuation"
)

// AnonymousUser attributes reports requested without a caller identity.
const AnonymousUser = "anonymous"

// Service assembles CMA reports. It holds no per-request state.
type Service struct {
	selector    *comps.Selector
	tolerances  models.Tolerances
	assumptions models.AssumptionOverrides
	logger      *logrus.Logger
	now         func() time.Time
}

// NewService builds a Service. tolerances and assumptions are the
// configured fallbacks applied under each request's overrides.
func NewService(store comps.Store, tolerances models.Tolerances, assumptions models.AssumptionOverrides, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Service{
		selector:    comps.NewSelector(store, logger),
		tolerances:  tolerances,
		assumptions: assumptions,
		logger:      logger,
		now:         time.Now,
	}
}

// Generate runs one CMA request end to end. Errors are always *Error.
func (s *Service) Generate(ctx context.Context, req *models.CMARequest) (*models.CMAReport, error) {
	start := time.Now()

	settings := comps.NewSettings(req.Tolerances.Merge(s.tolerances))
	if err := settings.Validate(); err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}

	var assumptions investment.Assumptions
	if req.IncludeInvestment {
		overrides := models.AssumptionOverrides{}
		if req.Assumptions != nil {
			overrides = *req.Assumptions
		}
		assumptions = investment.NewAssumptions(overrides.Merge(s.assumptions))
		if err := assumptions.Validate(); err != nil {
			return nil, newError(KindValidation, err.Error(), err)
		}
	}

	subjects, err := s.selector.ResolveSubjects(ctx, req)
	switch {
	case errors.Is(err, comps.ErrNoSubject):
		return nil, newError(KindValidation, err.Error(), err)
	case errors.Is(err, comps.ErrSubjectNotFound):
		return nil, newError(KindNotFound, err.Error(), err)
	case err != nil:
		s.logger.WithError(err).Error("Failed to resolve subject")
		return nil, newError(KindDatastore, "failed to look up subject property", err)
	}
	basis := subjects[0]

	filter := comps.BuildFilter(subjects, req.City, req.Subdivision, settings)
	comparables, err := s.selector.SelectComparables(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to select comparables")
		return nil, newError(KindDatastore, "failed to query comparable properties", err)
	}

	metrics := market.Aggregate(comparables)
	estimate := valuation.Estimate(basis.LivingArea, basis.ListPrice, metrics)

	var analysis *models.InvestmentAnalysis
	if req.IncludeInvestment {
		analysis = investment.Analyze(basis.ListPrice, basis.AssociationFee, assumptions)
	}

	report := s.assemble(subjects, comparables, metrics, estimate, analysis, req.UserEmail)

	s.logger.WithFields(logrus.Fields{
		"report_id":   report.ReportID,
		"subject":     basis.ListingKey,
		"subjects":    len(subjects),
		"comp_count":  metrics.CompCount,
		"estimated":   estimate != nil,
		"investment":  analysis != nil,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Generated CMA report")

	return report, nil
}

func (s *Service) assemble(subjects, comparables []models.Property, metrics models.CMAMetrics, estimate *models.EstimatedValue, analysis *models.InvestmentAnalysis, user string) *models.CMAReport {
	basis := subjects[0]

	var origin *orb.Point
	if basis.HasCoordinates() {
		origin = &orb.Point{*basis.Longitude, *basis.Latitude}
	}

	selected := make([]models.PropertySummary, len(subjects))
	for i, p := range subjects {
		selected[i] = summarize(p, nil)
	}
	compSummaries := make([]models.PropertySummary, len(comparables))
	for i, p := range comparables {
		compSummaries[i] = summarize(p, origin)
	}

	if user == "" {
		user = AnonymousUser
	}

	return &models.CMAReport{
		Success:            true,
		ReportID:           uuid.NewString(),
		GeneratedAt:        s.now().UTC().Format(time.RFC3339),
		Subject:            summarize(basis, nil),
		SelectedProperties: selected,
		Metrics:            roundMetrics(metrics),
		Comps:              compSummaries,
		EstimatedValue:     roundEstimate(estimate),
		Investment:         roundInvestment(analysis),
		MarketContext:      market.Context(metrics),
		GeneratedBy:        user,
	}
}
