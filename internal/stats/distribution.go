// Package stats holds the numeric helpers used by the market aggregator.
// Every function returns 0 for an empty sample instead of NaN.
package stats

import (
	"sort"

	"jpsrealtor/cma/internal/models"
)

// Median returns the middle value of values, or the mean of the two middle
// values for an even-length sample. The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Summarize builds a Distribution over values.
func Summarize(values []float64) models.Distribution {
	if len(values) == 0 {
		return models.Distribution{}
	}
	return models.Distribution{
		Count:   len(values),
		Median:  Median(values),
		Average: Mean(values),
		Min:     Min(values),
		Max:     Max(values),
	}
}
