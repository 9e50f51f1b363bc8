package models

import "github.com/paulmach/orb"

// IntRange is an inclusive range of whole numbers.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FloatRange is an inclusive range.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ComparableFilter is built once per request from the subject and the
// tolerances. Nil fields are not applied.
type ComparableFilter struct {
	PropertyType      string      `json:"property_type"`
	Statuses          []string    `json:"statuses"`
	City              string      `json:"city,omitempty"`
	Subdivision       string      `json:"subdivision,omitempty"`
	Bedrooms          *IntRange   `json:"bedrooms,omitempty"`
	Bathrooms         *FloatRange `json:"bathrooms,omitempty"`
	LivingArea        *FloatRange `json:"living_area,omitempty"`
	RequirePool       bool        `json:"require_pool"`
	RequireSpa        bool        `json:"require_spa"`
	Bounds            *orb.Bound  `json:"bounds,omitempty"`
	ExcludeKeys       []string    `json:"exclude_keys,omitempty"`
	ExcludeListingIDs []string    `json:"exclude_listing_ids,omitempty"`
	Limit             int         `json:"limit"`
}

// Excludes reports whether p is one of the subjects named in the filter.
func (f ComparableFilter) Excludes(p Property) bool {
	for _, key := range f.ExcludeKeys {
		if p.ListingKey == key {
			return true
		}
	}
	for _, id := range f.ExcludeListingIDs {
		if p.ListingID == id {
			return true
		}
	}
	return false
}
