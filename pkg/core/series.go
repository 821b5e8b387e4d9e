package core

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of values, the raw column storage of a Dataframe
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Copy returns a series backed by a new array
func (s Series[T]) Copy() Series[T] {
	if s == nil {
		return nil
	}
	out := make(Series[T], len(s))
	copy(out, s)
	return out
}

// NumDecPlaces returns the number of decimal places in a float64
// Useful for formatting with appropriate precision
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}

// FormatFloat formats a float64 with the given precision, -1 keeps the shortest representation
func FormatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// FormatWithOptimalPrecision formats a float using its inherent precision
// capped at maxPrecision decimal places
func FormatWithOptimalPrecision(value float64, maxPrecision int) string {
	precision := int(NumDecPlaces(value))
	if precision > maxPrecision {
		precision = maxPrecision
	}
	return TrimTrailingZeros(FormatFloat(value, precision))
}

// TrimTrailingZeros removes unnecessary zeros after the decimal point
func TrimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}

	return s
}
