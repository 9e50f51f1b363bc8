package comps

import (
	"errors"
	"fmt"

	"jpsrealtor/cma/internal/models"
)

// Built-in tolerances used when neither the request nor the defaults file
// sets a value.
const (
	DefaultRadiusMiles   = 1.0
	DefaultBedTolerance  = 0
	DefaultBathTolerance = 0.0
	DefaultSqftTolerance = 400.0
	DefaultMaxComps      = 20
	DefaultIncludeClosed = true

	// MaxCompsLimit caps how many comparables one request may ask for.
	MaxCompsLimit = 100
)

var ErrInvalidTolerance = errors.New("invalid tolerance")

// Settings are fully resolved tolerances.
type Settings struct {
	RadiusMiles   float64
	BedTolerance  int
	BathTolerance float64
	SqftTolerance float64
	MaxComps      int
	IncludeClosed bool
}

// NewSettings applies the built-in defaults to every unset tolerance.
func NewSettings(t models.Tolerances) Settings {
	s := Settings{
		RadiusMiles:   DefaultRadiusMiles,
		BedTolerance:  DefaultBedTolerance,
		BathTolerance: DefaultBathTolerance,
		SqftTolerance: DefaultSqftTolerance,
		MaxComps:      DefaultMaxComps,
		IncludeClosed: DefaultIncludeClosed,
	}
	if t.RadiusMiles != nil {
		s.RadiusMiles = *t.RadiusMiles
	}
	if t.BedTolerance != nil {
		s.BedTolerance = *t.BedTolerance
	}
	if t.BathTolerance != nil {
		s.BathTolerance = *t.BathTolerance
	}
	if t.SqftTolerance != nil {
		s.SqftTolerance = *t.SqftTolerance
	}
	if t.MaxComps != nil {
		s.MaxComps = *t.MaxComps
	}
	if t.IncludeClosed != nil {
		s.IncludeClosed = *t.IncludeClosed
	}
	return s
}

// Validate rejects a non-positive radius, negative tolerances and out of
// range comp counts.
func (s Settings) Validate() error {
	switch {
	case s.RadiusMiles <= 0:
		return fmt.Errorf("%w: radius_miles must be greater than 0", ErrInvalidTolerance)
	case s.BedTolerance < 0:
		return fmt.Errorf("%w: bed_tolerance must not be negative", ErrInvalidTolerance)
	case s.BathTolerance < 0:
		return fmt.Errorf("%w: bath_tolerance must not be negative", ErrInvalidTolerance)
	case s.SqftTolerance < 0:
		return fmt.Errorf("%w: sqft_tolerance must not be negative", ErrInvalidTolerance)
	case s.MaxComps < 1 || s.MaxComps > MaxCompsLimit:
		return fmt.Errorf("%w: max_comps must be between 1 and %d", ErrInvalidTolerance, MaxCompsLimit)
	}
	return nil
}
