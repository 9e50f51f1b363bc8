package investment

// Rating labels.
const (
	Excellent     = "excellent"
	Good          = "good"
	Poor          = "poor"
	Acceptable    = "acceptable"
	Risky         = "risky"
	NotApplicable = "n/a"
)

// Tier assigns Label to values that reach Bound. AtMost flips the comparison
// for metrics where lower is better.
type Tier struct {
	Bound float64
	Label string
}

// RatingTable rates a value against ordered tiers, falling back to Fallback.
type RatingTable struct {
	Tiers    []Tier
	AtMost   bool
	Fallback string
}

func (t RatingTable) Rate(value float64) string {
	for _, tier := range t.Tiers {
		if t.AtMost && value <= tier.Bound {
			return tier.Label
		}
		if !t.AtMost && value >= tier.Bound {
			return tier.Label
		}
	}
	return t.Fallback
}

var (
	CashOnCashRatings = RatingTable{
		Tiers:    []Tier{{Bound: 8, Label: Excellent}, {Bound: 5, Label: Good}},
		Fallback: Poor,
	}

	CapRateRatings = RatingTable{
		Tiers:    []Tier{{Bound: 7, Label: Excellent}, {Bound: 4, Label: Good}},
		Fallback: Poor,
	}

	GRMRatings = RatingTable{
		Tiers:    []Tier{{Bound: 7, Label: Excellent}, {Bound: 10, Label: Good}},
		AtMost:   true,
		Fallback: Poor,
	}

	DSCRRatings = RatingTable{
		Tiers:    []Tier{{Bound: 1.25, Label: Excellent}, {Bound: 1.0, Label: Acceptable}},
		Fallback: Risky,
	}
)
