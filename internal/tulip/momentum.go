package tulip

import "github.com/markcheno/go-talib"

// ---------------------------------------
// Momentum Indicators
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "adx", FullName: "Average Directional Movement Index", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2)}, Outputs: []string{"adx"},
			Start: periodStart(0, 2, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Adx(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "adxr", FullName: "Average Directional Movement Rating", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2)}, Outputs: []string{"adxr"},
			Start: periodStart(0, 3, -2),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.AdxR(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "ao", FullName: "Awesome Oscillator", Type: TypeIndicator,
			Inputs: inHL, Outputs: []string{"ao"},
			Start: fixedStart(33),
			call: func(in [][]float64, _ []float64) [][]float64 {
				median := talib.MedPrice(in[0], in[1])
				return single(talib.Sub(talib.Sma(median, 5), talib.Sma(median, 34)))
			},
		},
		Function{
			Name: "apo", FullName: "Absolute Price Oscillator", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("short_period", 2), period("long_period", 2)},
			Outputs: []string{"apo"},
			Start:   periodStart(1, 1, -1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Apo(in[0], opt(o, 0), opt(o, 1), talib.EMA))
			},
		},
		Function{
			Name: "aroon", FullName: "Aroon", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 2, 14)},
			Outputs: []string{"aroon_down", "aroon_up"},
			Start:   periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				down, up := talib.Aroon(in[0], in[1], opt(o, 0))
				return [][]float64{down, up}
			},
		},
		Function{
			Name: "aroonosc", FullName: "Aroon Oscillator", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 2, 14)}, Outputs: []string{"aroonosc"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.AroonOsc(in[0], in[1], opt(o, 0)))
			},
		},
		Function{
			Name: "bop", FullName: "Balance of Power", Type: TypeIndicator,
			Inputs: inOHLC, Outputs: []string{"bop"},
			Start: fixedStart(0),
			call: func(in [][]float64, _ []float64) [][]float64 {
				return single(talib.Bop(in[0], in[1], in[2], in[3]))
			},
		},
		Function{
			Name: "cci", FullName: "Commodity Channel Index", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2, 20)}, Outputs: []string{"cci"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Cci(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "cmo", FullName: "Chande Momentum Oscillator", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"cmo"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Cmo(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "di", FullName: "Directional Indicator", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2)}, Outputs: []string{"plus_di", "minus_di"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return [][]float64{
					talib.PlusDI(in[0], in[1], in[2], opt(o, 0)),
					talib.MinusDI(in[0], in[1], in[2], opt(o, 0)),
				}
			},
		},
		Function{
			Name: "dm", FullName: "Directional Movement", Type: TypeIndicator,
			Inputs: inHL, Options: []Option{period("period", 2)}, Outputs: []string{"plus_dm", "minus_dm"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return [][]float64{
					talib.PlusDM(in[0], in[1], opt(o, 0)),
					talib.MinusDM(in[0], in[1], opt(o, 0)),
				}
			},
		},
		Function{
			Name: "dx", FullName: "Directional Movement Index", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2)}, Outputs: []string{"dx"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Dx(in[0], in[1], in[2], opt(o, 0)))
			},
		},
		Function{
			Name: "macd", FullName: "Moving Average Convergence/Divergence", Type: TypeIndicator,
			Inputs: inReal,
			Options: []Option{
				period("short_period", 2, 12),
				period("long_period", 2, 26),
				period("signal_period", 1, 9),
			},
			Outputs: []string{"macd", "macd_signal", "macd_histogram"},
			Start: func(o []float64) int {
				return opt(o, 1) - 1 + opt(o, 2) - 1
			},
			check: ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				macd, signal, histogram := talib.Macd(in[0], opt(o, 0), opt(o, 1), opt(o, 2))
				return [][]float64{macd, signal, histogram}
			},
		},
		Function{
			Name: "mom", FullName: "Momentum", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1, 9)}, Outputs: []string{"mom"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Mom(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "ppo", FullName: "Percentage Price Oscillator", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("short_period", 2), period("long_period", 2)},
			Outputs: []string{"ppo"},
			Start:   periodStart(1, 1, -1),
			check:   ordered(0, 1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Ppo(in[0], opt(o, 0), opt(o, 1), talib.EMA))
			},
		},
		Function{
			Name: "qstick", FullName: "Qstick", Type: TypeIndicator,
			Inputs: []string{"open", "close"}, Options: []Option{period("period", 2)}, Outputs: []string{"qstick"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Sma(talib.Sub(in[1], in[0]), opt(o, 0)))
			},
		},
		Function{
			Name: "roc", FullName: "Rate of Change", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1, 9)}, Outputs: []string{"roc"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Roc(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "rocr", FullName: "Rate of Change Ratio", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1, 9)}, Outputs: []string{"rocr"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Rocr(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "rsi", FullName: "Relative Strength Index", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2, 14)}, Outputs: []string{"rsi"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Rsi(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "stoch", FullName: "Stochastic Oscillator", Type: TypeIndicator,
			Inputs: inHLC,
			Options: []Option{
				period("pct_k_period", 1, 5),
				period("pct_k_slowing_period", 1, 3),
				period("pct_d_period", 1, 3),
			},
			Outputs: []string{"stoch_k", "stoch_d"},
			Start: func(o []float64) int {
				return opt(o, 0) - 1 + opt(o, 1) - 1 + opt(o, 2) - 1
			},
			call: func(in [][]float64, o []float64) [][]float64 {
				k, d := talib.Stoch(in[0], in[1], in[2], opt(o, 0), opt(o, 1), talib.SMA, opt(o, 2), talib.SMA)
				return [][]float64{k, d}
			},
		},
		Function{
			Name: "stochrsi", FullName: "Stochastic RSI", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2, 14)}, Outputs: []string{"stochrsi"},
			Start: periodStart(0, 2, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				k, _ := talib.StochRsi(in[0], opt(o, 0), opt(o, 0), 1, talib.SMA)
				return single(k)
			},
		},
		Function{
			Name: "trix", FullName: "Trix", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"trix"},
			Start: periodStart(0, 3, -2),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Trix(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "ultosc", FullName: "Ultimate Oscillator", Type: TypeIndicator,
			Inputs: inHLC,
			Options: []Option{
				period("short_period", 1, 7),
				period("medium_period", 1, 14),
				period("long_period", 1, 28),
			},
			Outputs: []string{"ultosc"},
			Start:   periodStart(2, 1, 0),
			check: func(f Function, o []float64) *OptionError {
				if err := ordered(0, 1)(f, o); err != nil {
					return err
				}
				return ordered(1, 2)(f, o)
			},
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.UltOsc(in[0], in[1], in[2], opt(o, 0), opt(o, 1), opt(o, 2)))
			},
		},
		Function{
			Name: "willr", FullName: "Williams %R", Type: TypeIndicator,
			Inputs: inHLC, Options: []Option{period("period", 2, 14)}, Outputs: []string{"willr"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.WillR(in[0], in[1], in[2], opt(o, 0)))
			},
		},
	)
}
