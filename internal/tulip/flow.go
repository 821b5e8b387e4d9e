package tulip

import (
	"math"

	"github.com/markcheno/go-talib"
)

// ---------------------------------------
// Composite volume indicators
// ---------------------------------------

// volumeIndexBase is the first value of the positive and negative volume indexes
const volumeIndexBase = 1000

func init() {
	register(
		Function{
			Name: "emv", FullName: "Ease of Movement", Type: TypeIndicator,
			Inputs: []string{"high", "low", "volume"}, Outputs: []string{"emv"},
			Start: fixedStart(1),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(easeOfMovement(in[0], in[1], in[2]))
			},
		},
		Function{
			Name: "kvo", FullName: "Klinger Volume Oscillator", Type: TypeIndicator,
			Inputs: inHLCV, Options: []Option{period("short_period", 1), period("long_period", 1)},
			Outputs: []string{"kvo"},
			Start:   fixedStart(1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(klinger(in[0], in[1], in[2], in[3], opt(o, 0), opt(o, 1)))
			},
		},
		Function{
			Name: "nvi", FullName: "Negative Volume Index", Type: TypeIndicator,
			Inputs: []string{"close", "volume"}, Outputs: []string{"nvi"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(volumeIndex(in[0], in[1], func(volume, previous float64) bool {
					return volume < previous
				}))
			},
		},
		Function{
			Name: "pvi", FullName: "Positive Volume Index", Type: TypeIndicator,
			Inputs: []string{"close", "volume"}, Outputs: []string{"pvi"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(volumeIndex(in[0], in[1], func(volume, previous float64) bool {
					return volume > previous
				}))
			},
		},
		Function{
			Name: "vosc", FullName: "Volume Oscillator", Type: TypeIndicator,
			Inputs: []string{"volume"}, Options: []Option{period("short_period", 1), period("long_period", 1)},
			Outputs: []string{"vosc"},
			Start:   periodStart(1, 1, -1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(volumeOscillator(in[0], opt(o, 0), opt(o, 1)))
			},
		},
		Function{
			Name: "wad", FullName: "Williams Accumulation/Distribution", Type: TypeIndicator,
			Inputs: inHLC, Outputs: []string{"wad"},
			Start: fixedStart(1),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(williamsAD(in[0], in[1], in[2]))
			},
		},
	)
}

func easeOfMovement(high, low, volume []float64) []float64 {
	out := make([]float64, len(high))
	previous := (high[0] + low[0]) / 2
	for i := 1; i < len(high); i++ {
		median := (high[i] + low[i]) / 2
		spread := high[i] - low[i]
		if volume[i] != 0 {
			out[i] = (median - previous) * spread * 10000 / volume[i]
		}
		previous = median
	}
	return out
}

// klinger is the difference between the short and long exponential averages
// of the volume force, seeded with the first volume force
func klinger(high, low, close, volume []float64, shortPeriod, longPeriod int) []float64 {
	out := make([]float64, len(high))
	shortAlpha := 2 / float64(shortPeriod+1)
	longAlpha := 2 / float64(longPeriod+1)

	up := true
	trend := 0
	cumulative := 0.0
	previous := high[0] + low[0] + close[0]
	shortEma, longEma := 0.0, 0.0

	for i := 1; i < len(high); i++ {
		typical := high[i] + low[i] + close[i]
		movement := high[i] - low[i]

		switch {
		case typical > previous && trend != 1:
			trend, up = 1, true
			cumulative = high[i-1] - low[i-1]
		case typical < previous && trend != -1:
			trend, up = -1, false
			cumulative = high[i-1] - low[i-1]
		}
		cumulative += movement

		force := 0.0
		if cumulative != 0 {
			force = volume[i] * math.Abs(movement/cumulative*2-1) * 100
		}
		if !up {
			force = -force
		}

		if i == 1 {
			shortEma, longEma = force, force
		} else {
			shortEma += (force - shortEma) * shortAlpha
			longEma += (force - longEma) * longAlpha
		}
		out[i] = shortEma - longEma
		previous = typical
	}
	return out
}

// volumeIndex accumulates the close rate of change on the rows where counts
// holds for the volume and the previous volume
func volumeIndex(close, volume []float64, counts func(volume, previous float64) bool) []float64 {
	out := make([]float64, len(close))
	index := float64(volumeIndexBase)
	out[0] = index
	for i := 1; i < len(close); i++ {
		if counts(volume[i], volume[i-1]) && close[i-1] != 0 {
			index += (close[i] - close[i-1]) / close[i-1] * index
		}
		out[i] = index
	}
	return out
}

func volumeOscillator(volume []float64, shortPeriod, longPeriod int) []float64 {
	out := make([]float64, len(volume))
	short := talib.Sma(volume, shortPeriod)
	long := talib.Sma(volume, longPeriod)
	for i := longPeriod - 1; i < len(volume); i++ {
		if long[i] != 0 {
			out[i] = 100 * (short[i] - long[i]) / long[i]
		}
	}
	return out
}

func williamsAD(high, low, close []float64) []float64 {
	out := make([]float64, len(close))
	sum := 0.0
	for i := 1; i < len(close); i++ {
		switch previous := close[i-1]; {
		case close[i] > previous:
			sum += close[i] - math.Min(previous, low[i])
		case close[i] < previous:
			sum += close[i] - math.Max(previous, high[i])
		}
		out[i] = sum
	}
	return out
}
