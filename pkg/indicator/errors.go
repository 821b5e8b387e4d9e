package indicator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInputShape = errors.New("invalid input shape")
	ErrInvalidOption     = errors.New("invalid option")
	ErrUnknownIndicator  = errors.New("unknown indicator")
)

// InvalidInputShapeError is returned when the input does not provide the
// columns an indicator needs. It is raised before any computation.
type InvalidInputShapeError struct {
	Indicator string
	Column    string // missing column, empty when the whole input is rejected
	Reason    string
}

func (e *InvalidInputShapeError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s: column %q %s", e.Indicator, ErrInvalidInputShape, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Indicator, ErrInvalidInputShape, e.Reason)
}

func (e *InvalidInputShapeError) Unwrap() error {
	return ErrInvalidInputShape
}

// InvalidOptionError is returned when an option value is rejected
type InvalidOptionError struct {
	Indicator string
	Option    string
	Value     float64
	Missing   bool // no value was given and the option has no default
	Reason    string
}

func (e *InvalidOptionError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: %s %s: %s", e.Indicator, ErrInvalidOption, e.Option, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s=%v: %s", e.Indicator, ErrInvalidOption, e.Option, e.Value, e.Reason)
}

func (e *InvalidOptionError) Unwrap() error {
	return ErrInvalidOption
}
