package core

import (
	"time"
)

// TimeSeries is a single labeled sequence of values. It is both the single
// series input of an indicator and the shape of every indicator result.
type TimeSeries struct {
	Name   string
	Time   []time.Time
	Values Series[float64]
}

// NewTimeSeries creates a series named name over the given index
func NewTimeSeries(name string, index []time.Time, values []float64) *TimeSeries {
	return &TimeSeries{Name: name, Time: index, Values: values}
}

// Len returns the number of values in the series
func (ts TimeSeries) Len() int {
	return len(ts.Values)
}

// Index returns the time labels of the series
func (ts TimeSeries) Index() []time.Time {
	return ts.Time
}

// At returns the value at position i
func (ts TimeSeries) At(i int) float64 {
	return ts.Values[i]
}
