package core

// HeikinAshi smooths a stream of candles into Heikin-Ashi candles. It carries
// the previous smoothed open and close, so one value serves a single stream.
type HeikinAshi struct {
	open, close float64
	seeded      bool
}

// NewHeikinAshi creates a converter for one candle stream
func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// Next returns the Heikin-Ashi form of c. The first candle of the stream
// seeds the smoothed open with its own open and close.
//
//	close = (open + high + low + close) / 4
//	open  = (previous open + previous close) / 2
//	high  = max(high, open, close)
//	low   = min(low, open, close)
func (ha *HeikinAshi) Next(c Candle) Candle {
	if !ha.seeded {
		ha.open, ha.close, ha.seeded = c.Open, c.Close, true
	}

	smoothed := c
	smoothed.Open = (ha.open + ha.close) / 2
	smoothed.Close = (c.Open + c.High + c.Low + c.Close) / 4
	smoothed.High = max(c.High, smoothed.Open, smoothed.Close)
	smoothed.Low = min(c.Low, smoothed.Open, smoothed.Close)

	ha.open, ha.close = smoothed.Open, smoothed.Close
	return smoothed
}

// HeikinAshiCandles converts a whole series, leaving candles untouched
func HeikinAshiCandles(candles []Candle) []Candle {
	ha := NewHeikinAshi()
	out := make([]Candle, len(candles))
	for i, candle := range candles {
		out[i] = ha.Next(candle)
	}
	return out
}
