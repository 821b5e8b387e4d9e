package indicator

import (
	"fmt"

	"github.com/raykavin/pantalib/pkg/core"
)

// Select extracts the input arrays of an indicator from frame, one per
// declared input role and in declaration order. Generic series roles read the
// close column of a dataframe. A single TimeSeries only feeds indicators with
// exactly one input role.
func Select(desc Descriptor, frame core.Frame) ([][]float64, error) {
	switch f := frame.(type) {
	case core.TimeSeries:
		return selectSeries(desc, f)
	case *core.TimeSeries:
		if f == nil {
			return nil, shapeError(desc, "", "nil series")
		}
		return selectSeries(desc, *f)
	case core.Dataframe:
		return selectColumns(desc, f)
	case *core.Dataframe:
		if f == nil {
			return nil, shapeError(desc, "", "nil dataframe")
		}
		return selectColumns(desc, *f)
	default:
		return nil, shapeError(desc, "", fmt.Sprintf("unsupported input %T", frame))
	}
}

func selectSeries(desc Descriptor, series core.TimeSeries) ([][]float64, error) {
	if len(desc.Inputs) != 1 {
		return nil, shapeError(desc, "", fmt.Sprintf("requires a dataframe with columns %v, not a single series", desc.Columns()))
	}

	if series.Time != nil && len(series.Time) != len(series.Values) {
		return nil, shapeError(desc, "", "series index and values differ in length")
	}

	return [][]float64{series.Values}, nil
}

func selectColumns(desc Descriptor, df core.Dataframe) ([][]float64, error) {
	arrays := make([][]float64, 0, len(desc.Inputs))
	for _, role := range desc.Inputs {
		column, ok := df.Column(role.Column())
		if !ok {
			return nil, shapeError(desc, role.Column(), "is missing")
		}
		arrays = append(arrays, column)
	}
	return arrays, nil
}

func shapeError(desc Descriptor, column, reason string) error {
	return &InvalidInputShapeError{Indicator: desc.Code(), Column: column, Reason: reason}
}
