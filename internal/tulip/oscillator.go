package tulip

import (
	"math"

	"github.com/markcheno/go-talib"
)

// ---------------------------------------
// Composite oscillators
// ---------------------------------------

// massPeriod is the fixed EMA period of the mass index
const massPeriod = 9

func init() {
	register(
		Function{
			Name: "cvi", FullName: "Chaikins Volatility", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 1)}, Outputs: []string{"cvi"},
			Start: periodStart(0, 2, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				spread := talib.Ema(talib.Sub(in[0], in[1]), opt(o, 0))
				return single(talib.Roc(spread, opt(o, 0)))
			},
		},
		Function{
			Name: "dpo", FullName: "Detrended Price Oscillator", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"dpo"},
			Start: func(o []float64) int {
				return max(opt(o, 0)-1, opt(o, 0)/2+1)
			},
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(detrend(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "fisher", FullName: "Fisher Transform", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 2)},
			Outputs: []string{"fisher", "fisher_signal"},
			Start:   periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				fisher, signal := fisherTransform(in[0], in[1], opt(o, 0))
				return [][]float64{fisher, signal}
			},
		},
		Function{
			Name: "fosc", FullName: "Forecast Oscillator", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"fosc"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(forecastOscillator(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "mass", FullName: "Mass Index", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 1)}, Outputs: []string{"mass"},
			Start: periodStart(0, 1, 2*(massPeriod-1)-1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(massIndex(in[0], in[1], opt(o, 0)))
			},
		},
		Function{
			Name: "msw", FullName: "Mesa Sine Wave", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1)},
			Outputs: []string{"msw_sine", "msw_lead"},
			Start:   periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				sine, lead := mesaSineWave(in[0], opt(o, 0))
				return [][]float64{sine, lead}
			},
		},
		Function{
			Name: "vhf", FullName: "Vertical Horizontal Filter", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"vhf"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(verticalHorizontalFilter(in[0], opt(o, 0)))
			},
		},
	)
}

// detrend subtracts the SMA from the price period/2+1 rows back
func detrend(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	sma := talib.Sma(values, period)
	back := period/2 + 1
	for i := max(period-1, back); i < len(values); i++ {
		out[i] = values[i-back] - sma[i]
	}
	return out
}

// fisherTransform returns the transform of the median price normalized to its
// range over period rows, and the transform lagged by one row as the signal
func fisherTransform(high, low []float64, period int) (fisher, signal []float64) {
	fisher = make([]float64, len(high))
	signal = make([]float64, len(high))

	median := talib.MedPrice(high, low)
	highest := talib.Max(median, period)
	lowest := talib.Min(median, period)

	value, fish := 0.0, 0.0
	for i := period - 1; i < len(median); i++ {
		spread := highest[i] - lowest[i]
		if spread == 0 {
			spread = 0.001
		}

		value = 0.33*2*((median[i]-lowest[i])/spread-0.5) + 0.67*value
		value = math.Max(-0.999, math.Min(0.999, value))

		signal[i] = fish
		fish = 0.5*math.Log((1+value)/(1-value)) + 0.5*fish
		fisher[i] = fish
	}
	return fisher, signal
}

// forecastOscillator is the percentage difference between the price and the
// time series forecast made on the previous row
func forecastOscillator(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	forecast := talib.Tsf(values, period)
	for i := period; i < len(values); i++ {
		if values[i] != 0 {
			out[i] = 100 * (values[i] - forecast[i-1]) / values[i]
		}
	}
	return out
}

// massIndex sums over period rows the ratio between the single and the double
// EMA of the high-low range
func massIndex(high, low []float64, period int) []float64 {
	out := make([]float64, len(high))
	first := 2 * (massPeriod - 1)

	once := talib.Ema(talib.Sub(high, low), massPeriod)
	twice := make([]float64, len(once))
	copy(twice[massPeriod-1:], talib.Ema(once[massPeriod-1:], massPeriod))

	ratio := make([]float64, len(high)-first)
	for i := range ratio {
		if twice[first+i] != 0 {
			ratio[i] = once[first+i] / twice[first+i]
		}
	}

	copy(out[first:], talib.Sum(ratio, period))
	return out
}

// mesaSineWave returns the sine of the dominant cycle phase over period rows
// and the sine led by 45 degrees
func mesaSineWave(values []float64, period int) (sine, lead []float64) {
	sine = make([]float64, len(values))
	lead = make([]float64, len(values))

	for i := period; i < len(values); i++ {
		inPhase, quadrature := 0.0, 0.0
		for j := 0; j < period; j++ {
			angle := 2 * math.Pi * float64(j) / float64(period)
			inPhase += math.Cos(angle) * values[i-j]
			quadrature += math.Sin(angle) * values[i-j]
		}

		phase := math.Pi / 2
		if quadrature < 0 {
			phase = -phase
		}
		if math.Abs(inPhase) > 0.001 {
			phase = math.Atan(quadrature / inPhase)
		}
		if inPhase < 0 {
			phase += math.Pi
		}
		phase += math.Pi / 2
		if phase < 0 {
			phase += 2 * math.Pi
		}
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}

		sine[i] = math.Sin(phase)
		lead[i] = math.Sin(phase + math.Pi/4)
	}
	return sine, lead
}

// verticalHorizontalFilter divides the range of the last period rows by the
// sum of their absolute changes
func verticalHorizontalFilter(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	highest := talib.Max(values, period)
	lowest := talib.Min(values, period)

	changes := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		changes[i] = math.Abs(values[i] - values[i-1])
	}
	path := talib.Sum(changes, period)

	for i := period; i < len(values); i++ {
		if path[i] != 0 {
			out[i] = (highest[i] - lowest[i]) / path[i]
		}
	}
	return out
}
