package feed

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/pantalib/pkg/core"
)

const headerless = `1704067200,10,11,9,12,100
1704067260,11,12,10,13,110
1704067320,12,13,11,14,120
`

func minuteCSV(rows int) string {
	var builder strings.Builder
	builder.WriteString("time,open,high,low,close,volume,funding\n")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		value := float64(i + 1)
		record := []string{
			core.FormatFloat(float64(start.Add(time.Duration(i)*time.Minute).Unix()), 0),
			core.FormatFloat(value, -1),
			core.FormatFloat(value+1, -1),
			core.FormatFloat(value-1, -1),
			core.FormatFloat(value+0.5, -1),
			"10",
			core.FormatFloat(value/10, -1),
		}
		builder.WriteString(strings.Join(record, ",") + "\n")
	}
	return builder.String()
}

func TestReadDataframe_DefaultHeaders(t *testing.T) {
	df, err := ReadDataframe(strings.NewReader(headerless), WithPair("BTCUSDT"))
	require.NoError(t, err)

	require.Equal(t, 3, df.Len())
	assert.Equal(t, "BTCUSDT", df.Pair)
	assert.Equal(t, core.Series[float64]{10, 11, 12}, df.Open)
	assert.Equal(t, core.Series[float64]{11, 12, 13}, df.Close)
	assert.Equal(t, core.Series[float64]{9, 10, 11}, df.Low)
	assert.Equal(t, core.Series[float64]{12, 13, 14}, df.High)
	assert.Equal(t, core.Series[float64]{100, 110, 120}, df.Volume)
	assert.Equal(t, time.Unix(1704067200, 0).UTC(), df.Time[0])
}

func TestReadDataframe_CustomHeaders(t *testing.T) {
	df, err := ReadDataframe(strings.NewReader(minuteCSV(4)))
	require.NoError(t, err)

	assert.Equal(t, core.Series[float64]{1.5, 2.5, 3.5, 4.5}, df.Close)
	funding, ok := df.Column("funding")
	require.True(t, ok)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, funding, 1e-12)
}

func TestReadDataframe_MissingColumns(t *testing.T) {
	input := "date,close\n2024-01-01,10\n2024-01-02,11\n"
	df, err := ReadDataframe(strings.NewReader(input))
	require.NoError(t, err)

	_, ok := df.Column(core.ColumnClose)
	assert.True(t, ok)
	_, ok = df.Column(core.ColumnHigh)
	assert.False(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), df.Time[1])
}

func TestReadDataframe_Errors(t *testing.T) {
	_, err := ReadDataframe(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ReadDataframe(strings.NewReader("open,close\n1,2\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadDataframe(strings.NewReader("time,close\n1704067200,abc\n"))
	assert.Error(t, err)
}

func TestReadCandles_Resample(t *testing.T) {
	candles, err := ReadCandles(strings.NewReader(minuteCSV(11)), WithResample("1m", "5m"))
	require.NoError(t, err)
	require.Len(t, candles, 2)

	first := candles[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Time)
	assert.Equal(t, 1.0, first.Open)
	assert.Equal(t, 6.0, first.High)
	assert.Equal(t, 0.0, first.Low)
	assert.Equal(t, 5.5, first.Close)
	assert.Equal(t, 50.0, first.Volume)
	assert.InDelta(t, 0.5, first.Metadata["funding"], 1e-12)

	assert.Equal(t, 6.0, candles[1].Open)
	assert.Equal(t, 10.5, candles[1].Close)
}

func TestReadCandles_InvalidTimeframe(t *testing.T) {
	_, err := ReadCandles(strings.NewReader(minuteCSV(3)), WithResample("1m", "3m"))
	assert.Error(t, err)
}

func TestReadCandles_Limit(t *testing.T) {
	candles, err := ReadCandles(strings.NewReader(minuteCSV(10)), WithLimit(3*time.Minute))
	require.NoError(t, err)
	require.Len(t, candles, 3)
	assert.Equal(t, 8.0, candles[0].Open)
}

func TestReadCandles_HeikinAshi(t *testing.T) {
	candles, err := ReadCandles(strings.NewReader(headerless), WithHeikinAshi())
	require.NoError(t, err)
	require.Len(t, candles, 3)
	assert.Equal(t, 10.5, candles[0].Open)
	assert.Equal(t, 10.5, candles[0].Close)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btc.csv")
	require.NoError(t, os.WriteFile(path, []byte(headerless), 0o600))

	df, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, df.Len())

	_, err = ReadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	index := []time.Time{time.Unix(60, 0), time.Unix(120, 0)}
	sma := core.NewTimeSeries("SMA", index, []float64{1.5, 2})
	rsi := core.NewTimeSeries("RSI", index, []float64{30, 70.25})

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, WriteCSV(buffer, index, sma, rsi))
	assert.Equal(t, "time,SMA,RSI\n60,1.5,30\n120,2,70.25\n", buffer.String())

	short := core.NewTimeSeries("EMA", nil, []float64{1})
	assert.Error(t, WriteCSV(bytes.NewBuffer(nil), index, short))
}

func TestWriteCandles_RoundTrip(t *testing.T) {
	candles, err := ReadCandles(strings.NewReader(headerless))
	require.NoError(t, err)

	buffer := bytes.NewBuffer(nil)
	require.NoError(t, WriteCandles(buffer, candles, -1))

	again, err := ReadCandles(buffer)
	require.NoError(t, err)
	assert.Equal(t, candles, again)
}
