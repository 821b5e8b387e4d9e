package tulip

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInputs(names []string, size int) [][]float64 {
	inputs := make([][]float64, len(names))
	for i, name := range names {
		values := make([]float64, size)
		for j := range values {
			base := 100 + float64(j)*0.5 + 5*math.Sin(float64(j)/3)
			switch name {
			case "open":
				values[j] = base - 0.3
			case "high":
				values[j] = base + 2
			case "low":
				values[j] = base - 2
			case "volume":
				values[j] = 1000 + float64(j%7)*50
			default:
				values[j] = base
			}
		}
		inputs[i] = values
	}
	return inputs
}

func optionsFor(f Function) []float64 {
	options := make([]float64, len(f.Options))
	for i, option := range f.Options {
		switch {
		case option.HasDefault:
			options[i] = option.Default
		case option.Kind == KindPeriod:
			options[i] = 10
		default:
			options[i] = 2
		}
	}
	return options
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("sma")
	require.True(t, ok)
	require.Equal(t, "Simple Moving Average", f.FullName)
	require.Equal(t, []string{"real"}, f.Inputs)

	_, ok = Lookup("SMA")
	require.False(t, ok)

	require.Contains(t, Names(), "bbands")
	require.IsIncreasing(t, Names())
}

func TestFunction_CallTrimsWarmup(t *testing.T) {
	f, _ := Lookup("sma")
	input := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	out, err := f.Call([][]float64{input}, []float64{3})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5, 6, 7}, out[0], 1e-9)
}

func TestFunction_CallInsufficientData(t *testing.T) {
	f, _ := Lookup("macd")
	inputs := sampleInputs(f.Inputs, 30)

	out, err := f.Call(inputs, []float64{12, 26, 9})
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestFunction_CallInvalidOptions(t *testing.T) {
	sma, _ := Lookup("sma")
	macd, _ := Lookup("macd")
	inputs := sampleInputs([]string{"real"}, 20)

	tests := []struct {
		name    string
		f       Function
		options []float64
		option  string
	}{
		{"zero period", sma, []float64{0}, "period"},
		{"negative period", sma, []float64{-3}, "period"},
		{"period above length", sma, []float64{21}, "period"},
		{"fractional period", sma, []float64{2.5}, "period"},
		{"not finite", sma, []float64{math.NaN()}, "period"},
		{"missing option", sma, nil, "options"},
		{"long below short", macd, []float64{12, 5, 3}, "long_period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.f.Call(inputs, tt.options)
			require.Nil(t, out)

			var optionErr *OptionError
			require.True(t, errors.As(err, &optionErr), "unexpected error %v", err)
			assert.Equal(t, tt.option, optionErr.Option)
			assert.Equal(t, tt.f.Name, optionErr.Function)
		})
	}
}

func TestFunction_CallInputShape(t *testing.T) {
	f, _ := Lookup("atr")

	_, err := f.Call(sampleInputs([]string{"high", "low"}, 20), []float64{5})
	require.ErrorIs(t, err, ErrInputCount)

	inputs := sampleInputs(f.Inputs, 20)
	inputs[2] = inputs[2][:10]
	_, err = f.Call(inputs, []float64{5})
	require.ErrorIs(t, err, ErrInputLength)
}

func TestFunction_EveryRoutineHonorsStart(t *testing.T) {
	const size = 200

	for _, name := range Names() {
		f, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			options := optionsFor(f)
			out, err := f.Call(sampleInputs(f.Inputs, size), options)
			require.NoError(t, err)
			require.Len(t, out, len(f.Outputs))

			expected := size - f.Start(options)
			for _, values := range out {
				assert.Len(t, values, expected)
			}
		})
	}
}

func TestCompositeRoutines(t *testing.T) {
	tests := []struct {
		name     string
		inputs   [][]float64
		options  []float64
		expected [][]float64
	}{
		{"lag", [][]float64{{1, 2, 3, 4, 5}}, []float64{2}, [][]float64{{1, 2, 3}}},
		{"crossover", [][]float64{{1, 3, 2, 4}, {2, 2, 3, 3}}, nil, [][]float64{{1, 0, 1}}},
		{"crossany", [][]float64{{1, 3, 2, 4}, {2, 2, 3, 3}}, nil, [][]float64{{1, 1, 1}}},
		{"decay", [][]float64{{5, 1, 1, 4}}, []float64{2}, [][]float64{{5, 4.5, 4, 4}}},
		{"edecay", [][]float64{{4, 1, 1, 4}}, []float64{2}, [][]float64{{4, 2, 1, 4}}},
		{"wilders", [][]float64{{1, 3, 5, 7}}, []float64{2}, [][]float64{{2, 3.5, 5.25}}},
		{"md", [][]float64{{1, 3, 5}}, []float64{2}, [][]float64{{1, 1}}},
		{"vosc", [][]float64{{1, 3, 1}}, []float64{1, 2}, [][]float64{{50, -50}}},
		{
			"nvi",
			[][]float64{{10, 11, 12, 11}, {100, 50, 60, 40}},
			nil,
			[][]float64{{1000, 1100, 1100, 1100 - 1100.0/12}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Lookup(tt.name)
			require.True(t, ok)

			out, err := f.Call(tt.inputs, tt.options)
			require.NoError(t, err)
			require.Len(t, out, len(tt.expected))
			for i := range out {
				assert.InDeltaSlice(t, tt.expected[i], out[i], 1e-9)
			}
		})
	}
}

func TestFunction_SmoothingDefaults(t *testing.T) {
	for _, name := range []string{"sma", "ema"} {
		f, _ := Lookup(name)
		require.Len(t, f.Options, 1)
		assert.True(t, f.Options[0].HasDefault)
		assert.Equal(t, 5.0, f.Options[0].Default)
		assert.Equal(t, 1.0, f.Options[0].Min)

		input := []float64{4, 8, 15, 16, 23, 42}
		out, err := f.Call([][]float64{input}, []float64{1})
		require.NoError(t, err)
		assert.InDeltaSlice(t, input, out[0], 1e-9)
	}
}
