package core

import (
	"time"
)

// Column names recognized by Dataframe.Column
const (
	ColumnOpen   = "open"
	ColumnHigh   = "high"
	ColumnLow    = "low"
	ColumnClose  = "close"
	ColumnVolume = "volume"
)

// Frame is any indexed input an indicator can be computed over: a full
// Dataframe or a single TimeSeries
type Frame interface {
	// Len returns the number of rows
	Len() int
	// Index returns the row labels, it may be nil for unlabeled input
	Index() []time.Time
}

// Dataframe is a time series container for OHLCV and custom indicator data
type Dataframe struct {
	Pair string

	Close  Series[float64]
	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Volume Series[float64]

	Time       []time.Time
	LastUpdate time.Time

	// Custom user metadata for indicators
	Metadata map[string]Series[float64]
}

// NewDataframe builds a dataframe from candles ordered by time
func NewDataframe(pair string, candles []Candle) *Dataframe {
	df := &Dataframe{
		Pair:     pair,
		Close:    make(Series[float64], 0, len(candles)),
		Open:     make(Series[float64], 0, len(candles)),
		High:     make(Series[float64], 0, len(candles)),
		Low:      make(Series[float64], 0, len(candles)),
		Volume:   make(Series[float64], 0, len(candles)),
		Time:     make([]time.Time, 0, len(candles)),
		Metadata: make(map[string]Series[float64]),
	}

	for _, candle := range candles {
		df.Open = append(df.Open, candle.Open)
		df.High = append(df.High, candle.High)
		df.Low = append(df.Low, candle.Low)
		df.Close = append(df.Close, candle.Close)
		df.Volume = append(df.Volume, candle.Volume)
		df.Time = append(df.Time, candle.Time)
		for key, value := range candle.Metadata {
			df.Metadata[key] = append(df.Metadata[key], value)
		}
	}

	if n := len(df.Time); n > 0 {
		df.LastUpdate = df.Time[n-1]
	}

	return df
}

// Len returns the number of rows. The time index defines the row count,
// when it is nil the first non-nil column among close, open, high, low and
// volume does.
func (df Dataframe) Len() int {
	if df.Time != nil {
		return len(df.Time)
	}
	for _, column := range []Series[float64]{df.Close, df.Open, df.High, df.Low, df.Volume} {
		if column != nil {
			return len(column)
		}
	}
	return 0
}

// Index returns the time index of the dataframe
func (df Dataframe) Index() []time.Time {
	return df.Time
}

// Column returns the named column, OHLCV names first and then metadata.
// A column that does not span every row is reported as missing.
func (df Dataframe) Column(name string) (Series[float64], bool) {
	var column Series[float64]

	switch name {
	case ColumnOpen:
		column = df.Open
	case ColumnHigh:
		column = df.High
	case ColumnLow:
		column = df.Low
	case ColumnClose:
		column = df.Close
	case ColumnVolume:
		column = df.Volume
	default:
		var ok bool
		if column, ok = df.Metadata[name]; !ok {
			return nil, false
		}
	}

	if len(column) != df.Len() {
		return nil, false
	}

	return column, true
}

// Series returns the named column as a labeled TimeSeries sharing the dataframe index
func (df Dataframe) Series(name string) (TimeSeries, bool) {
	column, ok := df.Column(name)
	if !ok {
		return TimeSeries{}, false
	}

	return TimeSeries{Name: name, Time: df.Time, Values: column}, true
}

// Sample returns a subset of the dataframe with the last 'positions' elements
// Used for windowing operations on a dataframe
func (df Dataframe) Sample(positions int) Dataframe {
	size := df.Len()
	start := size - positions

	// Return the entire dataframe if requested sample is larger than dataframe
	if start <= 0 {
		return df
	}

	sample := Dataframe{
		Pair:       df.Pair,
		Close:      df.Close.LastValues(positions),
		Open:       df.Open.LastValues(positions),
		High:       df.High.LastValues(positions),
		Low:        df.Low.LastValues(positions),
		Volume:     df.Volume.LastValues(positions),
		LastUpdate: df.LastUpdate,
		Metadata:   make(map[string]Series[float64]),
	}

	if df.Time != nil {
		sample.Time = df.Time[start:]
	}

	// Also copy metadata series
	for key := range df.Metadata {
		sample.Metadata[key] = df.Metadata[key].LastValues(positions)
	}

	return sample
}
