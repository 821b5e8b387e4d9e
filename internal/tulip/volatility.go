package tulip

import "github.com/markcheno/go-talib"

// ---------------------------------------
// Volatility Indicators
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "atr", FullName: "Average True Range", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 1, 14)}, Outputs: []string{"atr"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Atr(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "natr", FullName: "Normalized Average True Range", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 1, 14)}, Outputs: []string{"natr"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Natr(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "tr", FullName: "True Range", Type: TypeIndicator,
			Inputs: inHLC, Outputs: []string{"tr"},
			Start: fixedStart(1),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.TRange(in[0], in[1], in[2]))
			},
		},
	)
}
