package core

import (
	"strconv"
	"time"
)

// Candle represents one OHLCV row
type Candle struct {
	Pair   string
	Time   time.Time
	Open   float64
	Close  float64
	Low    float64
	High   float64
	Volume float64

	// Additional columns from CSV inputs
	Metadata map[string]float64
}

// ToSlice converts the candle into a CSV record in the order
// time, open, close, low, high, volume. A negative precision keeps the
// shortest representation of every value.
func (c Candle) ToSlice(precision int) []string {
	return []string{
		strconv.FormatInt(c.Time.Unix(), 10),
		FormatFloat(c.Open, precision),
		FormatFloat(c.Close, precision),
		FormatFloat(c.Low, precision),
		FormatFloat(c.High, precision),
		FormatFloat(c.Volume, precision),
	}
}
