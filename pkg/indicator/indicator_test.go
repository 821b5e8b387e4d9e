package indicator

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/raykavin/pantalib/pkg/core"
)

func newTestDataframe(size int) *core.Dataframe {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]core.Candle, size)
	for i := range candles {
		base := 100 + float64(i)*0.5 + 5*math.Sin(float64(i)/3)
		candles[i] = core.Candle{
			Pair:   "BTCUSDT",
			Time:   start.Add(time.Duration(i) * time.Hour),
			Open:   base - 0.3,
			High:   base + 2,
			Low:    base - 2,
			Close:  base,
			Volume: 1000 + float64(i%7)*50,
		}
	}
	return core.NewDataframe("BTCUSDT", candles)
}

func testOptions(desc Descriptor) []float64 {
	options := make([]float64, len(desc.Options))
	for i, option := range desc.Options {
		if option.HasDefault {
			options[i] = option.Default
		} else {
			options[i] = 10
		}
	}
	return options
}

func TestSMA_TwentyRowScenario(t *testing.T) {
	closes := make(core.Series[float64], 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	df := core.Dataframe{Close: closes}

	result, err := SMA(df, 5)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Values, 20)
	assert.Equal(t, "SMA", result.Name)

	for i := 4; i < 20; i++ {
		assert.InDelta(t, stat.Mean(closes[i-4:i+1], nil), result.Values[i], 1e-9, "position %d", i)
	}
	for i := 0; i < 4; i++ {
		assert.InDelta(t, result.Values[4], result.Values[i], 1e-9, "position %d", i)
	}
	assert.InDelta(t, 3.0, result.Values[0], 1e-9)
}

func TestCompute_CloseColumnMatchesSeries(t *testing.T) {
	df := newTestDataframe(60)
	series, ok := df.Series(core.ColumnClose)
	require.True(t, ok)

	tests := []struct {
		name    string
		options []float64
	}{
		{"sma", []float64{10}},
		{"ema", []float64{10}},
		{"trix", []float64{5}},
		{"rsi", nil},
		{"bbands", []float64{20, 2}},
		{"macd", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromTable, err := Compute(tt.name, df, tt.options...)
			require.NoError(t, err)
			fromSeries, err := Compute(tt.name, series, tt.options...)
			require.NoError(t, err)

			require.Len(t, fromSeries, len(fromTable))
			for i := range fromTable {
				assert.Equal(t, fromTable[i].Values, fromSeries[i].Values)
				assert.Equal(t, fromTable[i].Time, fromSeries[i].Time)
			}
		})
	}
}

func TestCompute_EveryIndicatorIsDenseAndBackfilled(t *testing.T) {
	const size = 200
	df := newTestDataframe(size)

	for _, desc := range Default().Descriptors() {
		t.Run(desc.Name, func(t *testing.T) {
			options := testOptions(desc)
			results, err := Invoke(desc, df, options...)
			require.NoError(t, err)
			require.Len(t, results, len(desc.Outputs))

			warmup, err := desc.Warmup(options...)
			require.NoError(t, err)
			require.Less(t, warmup, size)

			for _, result := range results {
				assert.Equal(t, desc.Code(), result.Name)
				require.Len(t, result.Values, size)
				assert.Equal(t, df.Time, result.Time)
				for i := 0; i < warmup; i++ {
					assert.Equal(t, result.Values[warmup], result.Values[i])
				}
			}
		})
	}
}

func TestCompute_FixedArity(t *testing.T) {
	df := newTestDataframe(100)

	tests := []struct {
		name    string
		options []float64
		outputs int
	}{
		{"sma", []float64{5}, 1},
		{"bbands", []float64{20, 2}, 3},
		{"macd", []float64{12, 26, 9}, 3},
		{"aroon", nil, 2},
		{"stoch", nil, 2},
		{"di", []float64{14}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Compute(tt.name, df, tt.options...)
			require.NoError(t, err)
			require.Len(t, results, tt.outputs)
		})
	}
}

func TestCompute_InvalidPeriod(t *testing.T) {
	df := newTestDataframe(20)

	for _, period := range []float64{0, -1, 21, 2.5} {
		results, err := Compute("sma", df, period)
		require.Nil(t, results)
		require.ErrorIs(t, err, ErrInvalidOption)

		var optionErr *InvalidOptionError
		require.True(t, errors.As(err, &optionErr))
		assert.Equal(t, "SMA", optionErr.Indicator)
		assert.Equal(t, "period", optionErr.Option)
		assert.Equal(t, period, optionErr.Value)
	}
}

func TestCompute_OptionResolution(t *testing.T) {
	df := newTestDataframe(50)

	t.Run("defaults", func(t *testing.T) {
		implicit, err := Compute("rsi", df)
		require.NoError(t, err)
		explicit, err := Compute("rsi", df, 14)
		require.NoError(t, err)
		assert.Equal(t, explicit[0].Values, implicit[0].Values)
	})

	t.Run("recommended period", func(t *testing.T) {
		implicit, err := Compute("sma", df)
		require.NoError(t, err)
		explicit, err := Compute("sma", df, 5)
		require.NoError(t, err)
		assert.Equal(t, explicit[0].Values, implicit[0].Values)

		implicit, err = Compute("ema", df)
		require.NoError(t, err)
		explicit, err = Compute("ema", df, 5)
		require.NoError(t, err)
		assert.Equal(t, explicit[0].Values, implicit[0].Values)
	})

	t.Run("period of one", func(t *testing.T) {
		sma, err := SMA(df, 1)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(df.Close), []float64(sma.Values), 1e-9)

		ema, err := EMA(df, 1)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(df.Close), []float64(ema.Values), 1e-9)
	})

	t.Run("required option", func(t *testing.T) {
		_, err := Compute("apo", df)
		var optionErr *InvalidOptionError
		require.True(t, errors.As(err, &optionErr))
		assert.Equal(t, "short_period", optionErr.Option)
		assert.True(t, optionErr.Missing)
		assert.Equal(t, "APO: invalid option short_period: is required", err.Error())
	})

	t.Run("rejected value is reported", func(t *testing.T) {
		_, err := Compute("apo", df, 0, 10)
		var optionErr *InvalidOptionError
		require.True(t, errors.As(err, &optionErr))
		assert.False(t, optionErr.Missing)
		assert.Contains(t, err.Error(), "short_period=0")
	})

	t.Run("too many options", func(t *testing.T) {
		_, err := Compute("sma", df, 5, 2)
		var optionErr *InvalidOptionError
		require.True(t, errors.As(err, &optionErr))
		assert.Equal(t, "options", optionErr.Option)
	})

	t.Run("unordered periods", func(t *testing.T) {
		_, err := Compute("macd", df, 26, 12, 9)
		require.ErrorIs(t, err, ErrInvalidOption)
	})
}

func TestCompute_InsufficientData(t *testing.T) {
	df := newTestDataframe(30)

	results, err := Compute("macd", df, 12, 26, 9)
	require.NoError(t, err)
	require.Nil(t, results)

	macd, signal, histogram, err := MACD(df, 12, 26, 9)
	require.NoError(t, err)
	assert.Nil(t, macd)
	assert.Nil(t, signal)
	assert.Nil(t, histogram)
}

func TestCompute_Idempotent(t *testing.T) {
	df := newTestDataframe(80)
	before := df.Close.Copy()

	first, err := Compute("bbands", df, 20, 2)
	require.NoError(t, err)
	second, err := Compute("bbands", df, 20, 2)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Values, second[i].Values)
	}
	assert.Equal(t, before, df.Close)
}

func TestCompute_ResultOwnsIndex(t *testing.T) {
	df := newTestDataframe(30)
	original := df.Time[0]

	result, err := EMA(df, 5)
	require.NoError(t, err)

	result.Time[0] = original.Add(time.Hour * 24 * 365)
	assert.Equal(t, original, df.Time[0])
}

func TestCompute_SingleSeriesToMultiInputIndicator(t *testing.T) {
	df := newTestDataframe(40)
	series, _ := df.Series(core.ColumnClose)

	for _, name := range []string{"aroon", "atr", "midprice", "obv"} {
		t.Run(name, func(t *testing.T) {
			results, err := Compute(name, series)
			require.Nil(t, results)

			var shapeErr *InvalidInputShapeError
			require.True(t, errors.As(err, &shapeErr), "unexpected error %v", err)
			assert.Equal(t, strings.ToUpper(name), shapeErr.Indicator)
			assert.ErrorIs(t, err, ErrInvalidInputShape)
		})
	}
}

func TestCompute_MissingColumn(t *testing.T) {
	df := newTestDataframe(40)
	df.Volume = nil

	_, err := OBV(df)
	var shapeErr *InvalidInputShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, core.ColumnVolume, shapeErr.Column)

	df = newTestDataframe(40)
	df.High = df.High[:20]
	_, err = ATR(df, 14)
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, core.ColumnHigh, shapeErr.Column)
}

func TestCompute_UnsupportedFrame(t *testing.T) {
	var df *core.Dataframe
	_, err := Compute("sma", df, 5)
	require.ErrorIs(t, err, ErrInvalidInputShape)
}

func TestCompute_UnknownIndicator(t *testing.T) {
	_, err := Compute("nope", newTestDataframe(10))
	require.ErrorIs(t, err, ErrUnknownIndicator)
}

func TestWrappers(t *testing.T) {
	df := newTestDataframe(100)

	lower, middle, upper, err := BBands(df, 20, 2)
	require.NoError(t, err)
	for i := range middle.Values {
		assert.LessOrEqual(t, lower.Values[i], middle.Values[i])
		assert.LessOrEqual(t, middle.Values[i], upper.Values[i])
	}

	sma, err := SMA(df, 20)
	require.NoError(t, err)
	assert.InDeltaSlice(t, sma.Values, middle.Values, 1e-9)

	down, up, err := Aroon(df, 14)
	require.NoError(t, err)
	for i := range up.Values {
		assert.GreaterOrEqual(t, up.Values[i], 0.0)
		assert.LessOrEqual(t, down.Values[i], 100.0)
	}

	rsi, err := RSI(df, 14)
	require.NoError(t, err)
	assert.Equal(t, "RSI", rsi.Name)
	for _, value := range rsi.Values {
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 100.0)
	}

	tr, err := TR(df)
	require.NoError(t, err)
	for _, value := range tr.Values {
		assert.GreaterOrEqual(t, value, 4.0-1e-9)
	}
}

func TestCompute_FrameWithoutIndex(t *testing.T) {
	df := core.Dataframe{
		High: core.Series[float64]{3, 4, 5, 6},
		Low:  core.Series[float64]{1, 2, 3, 4},
	}

	result, err := MedPrice(df)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Time)
	assert.InDeltaSlice(t, []float64{2, 3, 4, 5}, []float64(result.Values), 1e-9)

	_, err = SMA(df, 2)
	var shapeErr *InvalidInputShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, core.ColumnClose, shapeErr.Column)
}

func TestCompositeIndicators(t *testing.T) {
	df := newTestDataframe(120)

	t.Run("lag", func(t *testing.T) {
		lag, err := Lag(df, 3)
		require.NoError(t, err)
		for i := 3; i < df.Len(); i++ {
			assert.Equal(t, df.Close[i-3], lag.Values[i])
		}
		assert.Equal(t, df.Close[0], lag.Values[0])
	})

	t.Run("unit periods follow the input", func(t *testing.T) {
		wilders, err := Wilders(df, 1)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(df.Close), []float64(wilders.Values), 1e-9)

		zlema, err := ZLEMA(df, 1)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64(df.Close), []float64(zlema.Values), 1e-9)
	})

	t.Run("decay never falls below the input", func(t *testing.T) {
		decay, err := Decay(df, 5)
		require.NoError(t, err)
		edecay, err := EDecay(df, 5)
		require.NoError(t, err)
		for i := range df.Close {
			assert.GreaterOrEqual(t, decay.Values[i], df.Close[i])
			assert.GreaterOrEqual(t, edecay.Values[i], df.Close[i])
		}
	})

	t.Run("crossing a series with itself", func(t *testing.T) {
		over, err := CrossOver(df)
		require.NoError(t, err)
		crossed, err := CrossAny(df)
		require.NoError(t, err)
		for i := range over.Values {
			assert.Zero(t, over.Values[i])
			assert.Zero(t, crossed.Values[i])
		}
	})

	t.Run("volume indexes start at the base", func(t *testing.T) {
		nvi, err := NVI(df)
		require.NoError(t, err)
		pvi, err := PVI(df)
		require.NoError(t, err)
		assert.Equal(t, 1000.0, nvi.Values[0])
		assert.Equal(t, 1000.0, pvi.Values[0])
	})

	t.Run("standard error", func(t *testing.T) {
		stderr, err := StdErr(df, 10)
		require.NoError(t, err)
		stddev, err := StdDev(df, 10)
		require.NoError(t, err)
		for i := range stddev.Values {
			assert.InDelta(t, stddev.Values[i], stderr.Values[i]*math.Sqrt(10), 1e-9)
		}
	})

	t.Run("volatility", func(t *testing.T) {
		volatility, err := Volatility(df, 20)
		require.NoError(t, err)
		for _, value := range volatility.Values {
			assert.GreaterOrEqual(t, value, 0.0)
		}
	})

	t.Run("two output oscillators", func(t *testing.T) {
		fisher, signal, err := Fisher(df, 10)
		require.NoError(t, err)
		assert.Len(t, fisher.Values, df.Len())
		assert.Len(t, signal.Values, df.Len())

		sine, lead, err := MSW(df, 10)
		require.NoError(t, err)
		for i := range sine.Values {
			assert.LessOrEqual(t, math.Abs(sine.Values[i]), 1.0)
			assert.LessOrEqual(t, math.Abs(lead.Values[i]), 1.0)
		}
	})
}
