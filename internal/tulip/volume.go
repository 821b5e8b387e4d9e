package tulip

import "github.com/markcheno/go-talib"

// ---------------------------------------
// Volume Indicators
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "ad", FullName: "Accumulation/Distribution Line", Type: TypeIndicator,
			Inputs: inHLCV, Outputs: []string{"ad"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.Ad(in[0], in[1], in[2], in[3]))
			},
		},
		Function{
			Name: "adosc", FullName: "Accumulation/Distribution Oscillator", Type: TypeIndicator,
			Inputs: inHLCV, Options: []Option{period("short_period", 2, 3), period("long_period", 2, 10)},
			Outputs: []string{"adosc"},
			Start:   periodStart(1, 1, -1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.AdOsc(in[0], in[1], in[2], in[3], opt(o, 0), opt(o, 1)))
			},
		},
		Function{
			Name: "marketfi", FullName: "Market Facilitation Index", Type: TypeIndicator,
			Inputs: []string{"high", "low", "volume"}, Outputs: []string{"marketfi"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.Div(talib.Sub(in[0], in[1]), in[2]))
			},
		},
		Function{
			Name: "mfi", FullName: "Money Flow Index", Type: TypeIndicator,
			Inputs: inHLCV, Options: []Option{period("period", 2, 14)}, Outputs: []string{"mfi"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Mfi(in[0], in[1], in[2], in[3], opt(o, 0)))
			},
		},
		Function{
			Name: "obv", FullName: "On Balance Volume", Type: TypeIndicator,
			Inputs: []string{"close", "volume"}, Outputs: []string{"obv"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.Obv(in[0], in[1]))
			},
		},
	)
}
