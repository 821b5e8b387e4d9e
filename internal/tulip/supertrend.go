package tulip

import "github.com/markcheno/go-talib"

func init() {
	register(Function{
		Name: "supertrend", FullName: "SuperTrend", Type: TypeOverlay,
		Inputs:  inHLC,
		Options: []Option{period("period", 1, 10), factor("factor", KindPositive, 3)},
		Outputs: []string{"supertrend"},
		Start:   periodStart(0, 1, 0),
		call: func(in [][]float64, o []float64) [][]float64 {
			return single(superTrend(in[0], in[1], in[2], opt(o, 0), o[1]))
		},
	})
}

// superTrend calculates the SuperTrend indicator based on high, low, and close prices
// Parameters:
//   - high: slice of high prices
//   - low: slice of low prices
//   - close: slice of closing prices
//   - atrPeriod: period for Average True Range calculation
//   - factor: multiplier for the ATR
//
// Returns: slice of SuperTrend values
func superTrend(high, low, close []float64, atrPeriod int, factor float64) []float64 {
	length := len(close)
	if length == 0 {
		return []float64{}
	}

	atr := talib.Atr(high, low, close, atrPeriod)

	basicUpperBand := make([]float64, length)
	basicLowerBand := make([]float64, length)
	finalUpperBand := make([]float64, length)
	finalLowerBand := make([]float64, length)
	trend := make([]float64, length)

	// Bands start once the ATR is defined
	for i := atrPeriod; i < length; i++ {
		median := (high[i] + low[i]) / 2.0
		basicUpperBand[i] = median + atr[i]*factor
		basicLowerBand[i] = median - atr[i]*factor

		if i == atrPeriod {
			finalUpperBand[i] = basicUpperBand[i]
			finalLowerBand[i] = basicLowerBand[i]
			trend[i] = finalUpperBand[i]
			if close[i] > finalUpperBand[i] {
				trend[i] = finalLowerBand[i]
			}
			continue
		}

		if basicUpperBand[i] < finalUpperBand[i-1] || close[i-1] > finalUpperBand[i-1] {
			finalUpperBand[i] = basicUpperBand[i]
		} else {
			finalUpperBand[i] = finalUpperBand[i-1]
		}

		if basicLowerBand[i] > finalLowerBand[i-1] || close[i-1] < finalLowerBand[i-1] {
			finalLowerBand[i] = basicLowerBand[i]
		} else {
			finalLowerBand[i] = finalLowerBand[i-1]
		}

		// Previous value on the upper band means a down trend
		if finalUpperBand[i-1] == trend[i-1] {
			if close[i] > finalUpperBand[i] {
				trend[i] = finalLowerBand[i]
			} else {
				trend[i] = finalUpperBand[i]
			}
		} else {
			if close[i] < finalLowerBand[i] {
				trend[i] = finalUpperBand[i]
			} else {
				trend[i] = finalLowerBand[i]
			}
		}
	}

	return trend
}
