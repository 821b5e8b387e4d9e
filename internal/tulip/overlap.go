package tulip

import "github.com/markcheno/go-talib"

// ------------------------------------------
// Overlap Studies (Moving Averages, Bands)
// ------------------------------------------

func init() {
	register(
		Function{
			Name: "sma", FullName: "Simple Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 1, 5)}, Outputs: []string{"sma"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Sma(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "ema", FullName: "Exponential Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 1, 5)}, Outputs: []string{"ema"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Ema(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "wma", FullName: "Weighted Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"wma"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Wma(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "dema", FullName: "Double Exponential Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"dema"},
			Start: periodStart(0, 2, -2),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Dema(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "tema", FullName: "Triple Exponential Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"tema"},
			Start: periodStart(0, 3, -3),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Tema(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "trima", FullName: "Triangular Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"trima"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Trima(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "kama", FullName: "Kaufman Adaptive Moving Average", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"kama"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Kama(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "t3", FullName: "Triple Exponential Moving Average (T3)", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2), factor("vfactor", KindFactor, 0.7)},
			Outputs: []string{"t3"},
			Start:   periodStart(0, 6, -6),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.T3(in[0], opt(o, 0), o[1]))
			},
		},
		Function{
			Name: "bbands", FullName: "Bollinger Bands", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2), factor("stddev", KindFactor)},
			Outputs: []string{"bbands_lower", "bbands_middle", "bbands_upper"},
			Start:   periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				upper, middle, lower := talib.BBands(in[0], opt(o, 0), o[1], o[1], talib.SMA)
				return [][]float64{lower, middle, upper}
			},
		},
		Function{
			Name: "midpoint", FullName: "MidPoint over period", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"midpoint"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.MidPoint(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "midprice", FullName: "Midpoint Price over period", Type: TypeOverlay,
			Inputs: inHL, Options: []Option{period("period", 2)}, Outputs: []string{"midprice"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.MidPrice(in[0], in[1], opt(o, 0)))
			},
		},
		Function{
			Name: "psar", FullName: "Parabolic SAR", Type: TypeOverlay,
			Inputs: inHL,
			Options: []Option{
				factor("acceleration_factor_step", KindPositive, 0.02),
				factor("acceleration_factor_maximum", KindPositive, 0.2),
			},
			Outputs: []string{"psar"},
			Start:   fixedStart(1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Sar(in[0], in[1], o[0], o[1]))
			},
		},
		Function{
			Name: "vwma", FullName: "Volume Weighted Moving Average", Type: TypeOverlay,
			Inputs: []string{"close", "volume"}, Options: []Option{period("period", 2)}, Outputs: []string{"vwma"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				weighted := talib.Sum(talib.Mult(in[0], in[1]), opt(o, 0))
				return single(talib.Div(weighted, talib.Sum(in[1], opt(o, 0))))
			},
		},
	)
}
