package tulip

import (
	"math"

	"github.com/markcheno/go-talib"
)

// ------------------------------------------
// Composite moving averages
// ------------------------------------------

func init() {
	register(
		Function{
			Name: "hma", FullName: "Hull Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"hma"},
			Start: func(o []float64) int {
				return opt(o, 0) - 1 + hullRoot(opt(o, 0)) - 1
			},
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(hullMovingAverage(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "zlema", FullName: "Zero-Lag Exponential Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"zlema"},
			Start: func(o []float64) int {
				return (opt(o, 0)-1)/2 + opt(o, 0) - 1
			},
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(zeroLagEma(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "wilders", FullName: "Wilders Smoothing", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"wilders"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(wilders(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "vidya", FullName: "Variable Index Dynamic Average", Type: TypeOverlay,
			Inputs: inReal,
			Options: []Option{
				period("short_period", 1),
				period("long_period", 2),
				factor("alpha", KindPositive),
			},
			Outputs: []string{"vidya"},
			Start:   periodStart(1, 1, -2),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(vidya(in[0], opt(o, 0), opt(o, 1), o[2]))
			},
		},
	)
}

func hullRoot(period int) int {
	return int(math.Sqrt(float64(period)))
}

// hullMovingAverage is the WMA over sqrt(period) rows of 2*WMA(period/2) - WMA(period)
func hullMovingAverage(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	half := talib.Wma(values, period/2)
	full := talib.Wma(values, period)

	first := period - 1
	raw := make([]float64, len(values)-first)
	for i := range raw {
		raw[i] = 2*half[first+i] - full[first+i]
	}

	copy(out[first:], talib.Wma(raw, hullRoot(period)))
	return out
}

// zeroLagEma is the EMA of the series de-lagged by (period-1)/2 rows
func zeroLagEma(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	lag := (period - 1) / 2

	delagged := make([]float64, len(values)-lag)
	for i := range delagged {
		current := values[lag+i]
		delagged[i] = current + (current - values[i])
	}

	copy(out[lag:], talib.Ema(delagged, period))
	return out
}

// wilders smooths with alpha 1/period, seeded with the SMA of the first period rows
func wilders(values []float64, period int) []float64 {
	out := talib.Sma(values, period)
	scale := 1 / float64(period)
	for i := period; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*scale + out[i-1]
	}
	return out
}

// vidya adapts an EMA-like average with the ratio between the short and long
// standard deviations
func vidya(values []float64, shortPeriod, longPeriod int, alpha float64) []float64 {
	out := make([]float64, len(values))
	first := longPeriod - 2
	out[first] = values[first]
	if len(values) < longPeriod {
		return out
	}

	short := talib.StdDev(values, shortPeriod, 1)
	long := talib.StdDev(values, longPeriod, 1)

	value := out[first]
	for i := longPeriod - 1; i < len(values); i++ {
		k := 0.0
		if long[i] != 0 {
			k = short[i] / long[i] * alpha
		}
		value = (values[i]-value)*k + value
		out[i] = value
	}
	return out
}
