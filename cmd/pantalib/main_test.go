package main

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/pantalib/pkg/batch"
	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/indicator"
)

func TestDownloadRange(t *testing.T) {
	start, end, err := downloadRange(0, "2024-01-01", "2024-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), end)

	start, end, err = downloadRange(7, "", "")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))

	_, _, err = downloadRange(0, "2024-01-01", "")
	assert.Error(t, err)
}

func TestSourceFlags_Load(t *testing.T) {
	_, err := (&sourceFlags{}).load(context.Background())
	assert.Error(t, err)

	_, err = (&sourceFlags{csvFile: "a.csv", binance: "BTCUSDT"}).load(context.Background())
	assert.Error(t, err)
}

func TestWriteResults_ColumnsCarryOptions(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]core.Candle, 40)
	for i := range candles {
		price := 100 + float64(i)
		candles[i] = core.Candle{Time: start.Add(time.Duration(i) * time.Hour), Open: price, High: price + 1, Low: price - 1, Close: price}
	}
	df := core.NewDataframe("BTCUSDT", candles)

	requests := []batch.Request{
		{Name: "sma", Options: []float64{5}},
		{Name: "sma", Options: []float64{20}},
		{Name: "bbands", Options: []float64{20, 2}},
	}
	results := make([]batch.Result, len(requests))
	for i, request := range requests {
		series, err := indicator.Compute(request.Name, df, request.Options...)
		require.NoError(t, err)
		results[i] = batch.Result{Request: request, Series: series}
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, writeResults(outputFlags{output: path}, "BTCUSDT", df, results))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	require.True(t, scanner.Scan())
	assert.Equal(t,
		"time,SMA_5,SMA_20,BBANDS_LOWER_20_2,BBANDS_MIDDLE_20_2,BBANDS_UPPER_20_2",
		scanner.Text())
}
