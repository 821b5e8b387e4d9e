package core

import (
	"math"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a series
type Summary struct {
	Count  int     // Number of finite values
	Mean   float64 // Arithmetic mean
	StdDev float64 // Sample standard deviation
	Min    float64 // Lowest value
	Max    float64 // Highest value
	Median float64 // 50% quantile
}

// Summarize calculates descriptive statistics over the finite values of the series
func Summarize(values []float64) Summary {
	data := finite(values)

	if len(data) == 0 {
		return Summary{}
	}

	sort.Float64s(data)
	mean, stdDev := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		stdDev = 0
	}

	return Summary{
		Count:  len(data),
		Mean:   mean,
		StdDev: stdDev,
		Min:    floats.Min(data),
		Max:    floats.Max(data),
		Median: stat.Quantile(0.5, stat.LinInterp, data, nil),
	}
}

// Interval is a bootstrap confidence interval of a statistic
type Interval struct {
	Lower  float64 // Lower bound of the confidence interval
	Upper  float64 // Upper bound of the confidence interval
	StdDev float64 // Standard deviation of the resampled statistic
	Mean   float64 // Mean of the resampled statistic
}

// Bootstrap estimates a confidence interval of measure over the finite
// values by resampling them with replacement samples times. Confidence is a
// fraction, e.g. 0.95.
func Bootstrap(values []float64, measure func([]float64) float64, samples int, confidence float64) Interval {
	data := finite(values)
	if len(data) == 0 || samples <= 0 {
		return Interval{}
	}

	estimates := make([]float64, samples)
	resample := make([]float64, len(data))
	for i := range estimates {
		for j := range resample {
			resample[j] = lo.Sample(data)
		}
		estimates[i] = measure(resample)
	}

	tail := 1 - confidence
	sort.Float64s(estimates)
	mean, stdDev := stat.MeanStdDev(estimates, nil)
	if samples == 1 {
		stdDev = 0
	}

	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, estimates, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, estimates, nil),
		StdDev: stdDev,
		Mean:   mean,
	}
}

// MeanOf is a Bootstrap measure returning the arithmetic mean
func MeanOf(values []float64) float64 {
	return stat.Mean(values, nil)
}

func finite(values []float64) []float64 {
	return lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}
