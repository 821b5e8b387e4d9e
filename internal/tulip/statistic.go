package tulip

import (
	"math"

	"github.com/markcheno/go-talib"
)

// tradingDays annualizes daily volatility
const tradingDays = 252

// ---------------------------------------
// Statistic and Math Functions
// ---------------------------------------

func init() {
	register(
		Function{
			Name: "linreg", FullName: "Linear Regression", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2, 50)}, Outputs: []string{"linreg"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.LinearReg(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "linregintercept", FullName: "Linear Regression Intercept", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2, 50)}, Outputs: []string{"linregintercept"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.LinearRegIntercept(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "linregslope", FullName: "Linear Regression Slope", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 2, 50)}, Outputs: []string{"linregslope"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.LinearRegSlope(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "tsf", FullName: "Time Series Forecast", Type: TypeOverlay,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"tsf"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Tsf(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "stddev", FullName: "Standard Deviation Over Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"stddev"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.StdDev(in[0], opt(o, 0), 1))
			},
		},
		Function{
			Name: "var", FullName: "Variance Over Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"var"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Var(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "max", FullName: "Maximum In Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"max"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Max(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "min", FullName: "Minimum In Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"min"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Min(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "sum", FullName: "Sum Over Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 2)}, Outputs: []string{"sum"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.Sum(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "md", FullName: "Mean Deviation Over Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"md"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(meanDeviation(in[0], opt(o, 0)))
			},
		},
		Function{
			Name: "stderr", FullName: "Standard Error Over Period", Type: TypeMath,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"stderr"},
			Start: periodStart(0, 1, -1),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(talib.StdDev(in[0], opt(o, 0), 1/math.Sqrt(float64(opt(o, 0)))))
			},
		},
		Function{
			Name: "volatility", FullName: "Annualized Historical Volatility", Type: TypeIndicator,
			Inputs: inReal, Options: []Option{period("period", 1)}, Outputs: []string{"volatility"},
			Start: periodStart(0, 1, 0),
			call: func(in [][]float64, o []float64) [][]float64 {
				return single(volatility(in[0], opt(o, 0)))
			},
		},
	)
}

// meanDeviation is the mean absolute distance to the SMA of the last period rows
func meanDeviation(values []float64, period int) []float64 {
	out := talib.Sma(values, period)
	for i := len(values) - 1; i >= period-1; i-- {
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += math.Abs(values[j] - out[i])
		}
		out[i] = sum / float64(period)
	}
	return out
}

// volatility is the annualized standard deviation of the one-row returns
func volatility(values []float64, period int) []float64 {
	out := make([]float64, len(values))

	returns := talib.Rocr(values, 1)
	for i := range returns {
		returns[i]--
	}

	deviation := talib.StdDev(returns[1:], period, math.Sqrt(tradingDays))
	copy(out[1:], deviation)
	return out
}
