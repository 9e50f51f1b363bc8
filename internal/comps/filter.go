package comps

import (
	"math"

	"github.com/paulmach/orb"

	"jpsrealtor/cma/internal/models"
)

// MilesPerDegreeLatitude approximates the length of one degree of latitude.
const MilesPerDegreeLatitude = 69.0

// BoundingBox returns the rectangle around (lat, lon) spanning radius miles
// in each direction. Longitude degrees shrink with cos(latitude).
func BoundingBox(lat, lon, radiusMiles float64) orb.Bound {
	latDelta := radiusMiles / MilesPerDegreeLatitude

	lonDelta := 180.0
	if cos := math.Cos(lat * math.Pi / 180); cos > 1e-9 {
		lonDelta = math.Min(radiusMiles/(MilesPerDegreeLatitude*cos), 180)
	}

	return orb.Bound{
		Min: orb.Point{lon - lonDelta, lat - latDelta},
		Max: orb.Point{lon + lonDelta, lat + latDelta},
	}
}

// BuildFilter derives the comparable filter from the subjects. The first
// subject is the numeric basis; every subject is excluded from the results.
func BuildFilter(subjects []models.Property, city, subdivision string, s Settings) models.ComparableFilter {
	filter := models.ComparableFilter{
		PropertyType: models.PropertyTypeResidential,
		Statuses:     []string{models.StatusActive},
		City:         city,
		Subdivision:  subdivision,
		Limit:        s.MaxComps,
	}
	if s.IncludeClosed {
		filter.Statuses = []string{models.StatusActive, models.StatusClosed, models.StatusSold, models.StatusPending}
	}

	for _, subject := range subjects {
		if subject.ListingKey != "" {
			filter.ExcludeKeys = append(filter.ExcludeKeys, subject.ListingKey)
		}
		if subject.ListingID != "" {
			filter.ExcludeListingIDs = append(filter.ExcludeListingIDs, subject.ListingID)
		}
	}

	if len(subjects) == 0 {
		return filter
	}
	basis := subjects[0]

	if basis.Bedrooms != nil {
		beds := *basis.Bedrooms
		filter.Bedrooms = &models.IntRange{
			Min: max(0, beds-s.BedTolerance),
			Max: beds + s.BedTolerance,
		}
	}
	if basis.Bathrooms != nil {
		baths := *basis.Bathrooms
		filter.Bathrooms = &models.FloatRange{
			Min: math.Max(0, baths-s.BathTolerance),
			Max: baths + s.BathTolerance,
		}
	}
	if basis.LivingArea != nil && *basis.LivingArea > 0 {
		sqft := *basis.LivingArea
		filter.LivingArea = &models.FloatRange{
			Min: math.Max(0, sqft-s.SqftTolerance),
			Max: sqft + s.SqftTolerance,
		}
	}

	filter.RequirePool = basis.Pool
	filter.RequireSpa = basis.Spa

	if basis.HasCoordinates() && s.RadiusMiles > 0 {
		bound := BoundingBox(*basis.Latitude, *basis.Longitude, s.RadiusMiles)
		filter.Bounds = &bound
	}

	return filter
}
