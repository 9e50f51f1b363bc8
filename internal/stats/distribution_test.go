package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "Empty", values: nil, expected: 0},
		{name: "Single element", values: []float64{42}, expected: 42},
		{name: "Odd length", values: []float64{3, 1, 2}, expected: 2},
		{name: "Even length", values: []float64{4, 1, 3, 2}, expected: 2.5},
		{name: "Price per sqft", values: []float64{260, 240, 250, 255, 245}, expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Median(tt.values)
			assert.False(t, math.IsNaN(got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 7.0, Mean([]float64{7}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-9)
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 0.0, Min(nil))
	assert.Equal(t, 0.0, Max(nil))
	assert.Equal(t, -1.0, Min([]float64{3, -1, 2}))
	assert.Equal(t, 3.0, Max([]float64{3, -1, 2}))
}

func TestSummarize(t *testing.T) {
	empty := Summarize(nil)
	assert.Equal(t, 0, empty.Count)
	assert.Equal(t, 0.0, empty.Median)
	assert.Equal(t, 0.0, empty.Average)

	d := Summarize([]float64{240, 245, 250, 255, 260})
	assert.Equal(t, 5, d.Count)
	assert.Equal(t, 250.0, d.Median)
	assert.Equal(t, 250.0, d.Average)
	assert.Equal(t, 240.0, d.Min)
	assert.Equal(t, 260.0, d.Max)
}
