package comps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"jpsrealtor/cma/internal/models"
)

var (
	ErrNoSubject       = errors.New("a listing_key, slug or selected_properties is required")
	ErrSubjectNotFound = errors.New("subject property not found")
)

// Store is the read side of the listing datastore. Lookups return nil, nil
// when the property does not exist.
type Store interface {
	GetPropertyByKey(ctx context.Context, key string) (*models.Property, error)
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
	SearchComparables(ctx context.Context, filter models.ComparableFilter) ([]models.Property, error)
}

// Selector resolves subjects and fetches their comparables.
type Selector struct {
	store  Store
	logger *logrus.Logger
}

func NewSelector(store Store, logger *logrus.Logger) *Selector {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Selector{store: store, logger: logger}
}

// ResolveSubjects returns the selected properties verbatim when given,
// otherwise looks up the single referenced property.
func (s *Selector) ResolveSubjects(ctx context.Context, req *models.CMARequest) ([]models.Property, error) {
	if len(req.SelectedProperties) > 0 {
		subjects := make([]models.Property, len(req.SelectedProperties))
		for i, input := range req.SelectedProperties {
			subjects[i] = input.ToProperty()
		}
		return subjects, nil
	}

	var (
		subject *models.Property
		err     error
		ref     string
	)
	switch {
	case req.ListingKey != "":
		ref = req.ListingKey
		subject, err = s.store.GetPropertyByKey(ctx, req.ListingKey)
	case req.Slug != "":
		ref = req.Slug
		subject, err = s.store.GetPropertyBySlug(ctx, models.Slugify(req.Slug))
	default:
		return nil, ErrNoSubject
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up subject %s: %w", ref, err)
	}
	if subject == nil {
		return nil, fmt.Errorf("%w: %s", ErrSubjectNotFound, ref)
	}
	return []models.Property{*subject}, nil
}

// SelectComparables runs the single comparable query for filter and
// enforces the result order and size.
func (s *Selector) SelectComparables(ctx context.Context, filter models.ComparableFilter) ([]models.Property, error) {
	start := time.Now()
	comps, err := s.store.SearchComparables(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search comparables: %w", err)
	}

	result := make([]models.Property, 0, len(comps))
	for _, c := range comps {
		if !filter.Excludes(c) {
			result = append(result, c)
		}
	}

	SortComparables(result)
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}

	s.logger.WithFields(logrus.Fields{
		"comp_count": len(result),
		"statuses":   filter.Statuses,
		"bounded":    filter.Bounds != nil,
		"duration":   time.Since(start).String(),
	}).Debug("Selected comparables")

	return result, nil
}

// SortComparables orders active listings first, then by most recent
// on-market date. Listings without a date sort last within their group.
func SortComparables(props []models.Property) {
	sort.SliceStable(props, func(i, j int) bool {
		ai, aj := props[i].IsActive(), props[j].IsActive()
		if ai != aj {
			return ai
		}
		di, dj := props[i].OnMarketDate, props[j].OnMarketDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		}
		return di.After(*dj)
	})
}
