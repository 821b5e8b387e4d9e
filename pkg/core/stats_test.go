package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	summary := Summarize([]float64{4, math.NaN(), 1, 3, 2, math.Inf(1)})

	assert.Equal(t, 4, summary.Count)
	assert.InDelta(t, 2.5, summary.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), summary.StdDev, 1e-12)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 4.0, summary.Max)
	assert.GreaterOrEqual(t, summary.Median, 2.0)
	assert.LessOrEqual(t, summary.Median, 3.0)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{Count: 1, Mean: 7, Min: 7, Max: 7, Median: 7}, Summarize([]float64{7}))
}

func TestBootstrap(t *testing.T) {
	constant := []float64{5, 5, 5, math.NaN(), 5}
	interval := Bootstrap(constant, MeanOf, 50, 0.95)
	assert.InDelta(t, 5.0, interval.Lower, 1e-12)
	assert.InDelta(t, 5.0, interval.Upper, 1e-12)
	assert.InDelta(t, 5.0, interval.Mean, 1e-12)
	assert.InDelta(t, 0.0, interval.StdDev, 1e-12)

	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	interval = Bootstrap(values, MeanOf, 200, 0.9)
	assert.LessOrEqual(t, interval.Lower, interval.Mean)
	assert.LessOrEqual(t, interval.Mean, interval.Upper)
	assert.GreaterOrEqual(t, interval.Lower, 1.0)
	assert.LessOrEqual(t, interval.Upper, 10.0)

	assert.Equal(t, Interval{}, Bootstrap(nil, MeanOf, 10, 0.95))
}
