package indicator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/raykavin/pantalib/internal/tulip"
	"github.com/raykavin/pantalib/pkg/core"
)

// Invoke computes the indicator described by desc over frame. Options are
// positional and fall back to the declared defaults. It returns one series per
// indicator output, each aligned with the frame index; the rows consumed by
// the warm-up window are back-filled with the first computed value. A nil
// result with a nil error means the frame is shorter than the warm-up window.
func Invoke(desc Descriptor, frame core.Frame, options ...float64) ([]*core.TimeSeries, error) {
	inputs, err := Select(desc, frame)
	if err != nil {
		return nil, err
	}

	resolved, err := desc.resolve(options)
	if err != nil {
		return nil, err
	}

	raw, err := desc.routine.Call(inputs, resolved)
	if err != nil {
		return nil, translate(desc, err)
	}

	if raw == nil {
		return nil, nil
	}

	results := make([]*core.TimeSeries, len(raw))
	for i, values := range raw {
		results[i] = align(desc.Code(), values, frame)
	}

	return results, nil
}

// Compute looks name up in the default registry and invokes it
func Compute(name string, frame core.Frame, options ...float64) ([]*core.TimeSeries, error) {
	return defaultRegistry.Compute(name, frame, options...)
}

// Compute looks name up in the registry and invokes it
func (r *Registry) Compute(name string, frame core.Frame, options ...float64) ([]*core.TimeSeries, error) {
	desc, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return Invoke(desc, frame, options...)
}

// align places values at the end of a series as long as the frame and
// back-fills every missing value from the next computed one
func align(name string, values []float64, frame core.Frame) *core.TimeSeries {
	size := frame.Len()
	padding := size - len(values)

	aligned := make(core.Series[float64], size)
	for i := 0; i < padding; i++ {
		aligned[i] = math.NaN()
	}
	copy(aligned[padding:], values)
	backfill(aligned)

	var index []time.Time
	if source := frame.Index(); source != nil {
		index = make([]time.Time, len(source))
		copy(index, source)
	}

	return core.NewTimeSeries(name, index, aligned)
}

func backfill(values core.Series[float64]) {
	next := math.NaN()
	for i := len(values) - 1; i >= 0; i-- {
		if math.IsNaN(values[i]) {
			values[i] = next
		} else {
			next = values[i]
		}
	}
}

func translate(desc Descriptor, err error) error {
	var optionErr *tulip.OptionError
	if errors.As(err, &optionErr) {
		return &InvalidOptionError{
			Indicator: desc.Code(),
			Option:    optionErr.Option,
			Value:     optionErr.Value,
			Reason:    optionErr.Reason,
		}
	}

	if errors.Is(err, tulip.ErrInputLength) || errors.Is(err, tulip.ErrInputCount) {
		return &InvalidInputShapeError{Indicator: desc.Code(), Reason: err.Error()}
	}

	return fmt.Errorf("%s: %w", desc.Code(), err)
}
