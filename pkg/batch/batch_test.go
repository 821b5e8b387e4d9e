package batch

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/indicator"
)

func testFrame(size int) *core.Dataframe {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]core.Candle, size)
	for i := range candles {
		base := 50 + 3*math.Sin(float64(i)/4) + float64(i)*0.1
		candles[i] = core.Candle{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   base - 0.2,
			High:   base + 1,
			Low:    base - 1,
			Close:  base,
			Volume: 500 + float64(i%5)*10,
		}
	}
	return core.NewDataframe("BTCUSDT", candles)
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		value    string
		expected Request
	}{
		{"sma:5", Request{Name: "sma", Options: []float64{5}}},
		{" BBands : 20, 2 ", Request{Name: "bbands", Options: []float64{20, 2}}},
		{"obv", Request{Name: "obv"}},
		{"rsi:", Request{Name: "rsi"}},
		{"psar:0.02,0.2", Request{Name: "psar", Options: []float64{0.02, 0.2}}},
	}

	for _, tt := range tests {
		request, err := ParseRequest(tt.value)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.expected, request, tt.value)
	}

	for _, value := range []string{"", ":5", "sma:five", "macd:12,,9"} {
		_, err := ParseRequest(value)
		assert.ErrorIs(t, err, ErrInvalidRequest, value)
	}
}

func TestRequest_String(t *testing.T) {
	assert.Equal(t, "bbands:20,2", Request{Name: "bbands", Options: []float64{20, 2}}.String())
	assert.Equal(t, "obv", Request{Name: "obv"}.String())

	requests, err := ParseRequests("sma:5", "psar:0.02,0.2")
	require.NoError(t, err)
	assert.Equal(t, "psar:0.02,0.2", requests[1].String())
}

func TestParsePlan(t *testing.T) {
	input := `
pair: BTCUSDT
indicators:
  - name: sma
    options: [20]
  - name: bbands
    options: [20, 2]
  - name: obv
`
	plan, err := ParsePlan(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "BTCUSDT", plan.Pair)
	assert.Equal(t, []Request{
		{Name: "sma", Options: []float64{20}},
		{Name: "bbands", Options: []float64{20, 2}},
		{Name: "obv"},
	}, plan.Indicators)
	assert.NoError(t, plan.Validate(indicator.Default()))

	plan.Indicators = append(plan.Indicators, Request{Name: "crossany"})
	assert.ErrorIs(t, plan.Validate(indicator.Default()), indicator.ErrUnknownIndicator)

	_, err = ParsePlan(strings.NewReader("indicators: []\n"))
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = ParsePlan(strings.NewReader("indicator:\n  - name: sma\n"))
	assert.Error(t, err)
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indicators:\n  - name: rsi\n"), 0o600))

	plan, err := LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, []Request{{Name: "rsi"}}, plan.Indicators)
}

func TestRunner_Run(t *testing.T) {
	frame := testFrame(120)
	requests, err := ParseRequests("sma:5", "bbands:20,2", "macd", "obv", "rsi")
	require.NoError(t, err)

	var hooked int32
	runner := NewRunner(WithParallelism(2), WithResultHook(func(Result) {
		atomic.AddInt32(&hooked, 1)
	}))

	results, err := runner.Run(context.Background(), frame, requests...)
	require.NoError(t, err)
	require.Len(t, results, len(requests))
	assert.Equal(t, int32(len(requests)), atomic.LoadInt32(&hooked))

	for i, result := range results {
		assert.Equal(t, requests[i], result.Request)

		expected, err := indicator.Compute(requests[i].Name, frame, requests[i].Options...)
		require.NoError(t, err)
		require.Len(t, result.Series, len(expected))
		for j := range expected {
			assert.Equal(t, expected[j].Values, result.Series[j].Values)
		}
	}
}

func TestRunner_InsufficientData(t *testing.T) {
	results, err := NewRunner().Run(context.Background(), testFrame(30), Request{Name: "macd"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Series)
}

func TestRunner_FirstErrorWins(t *testing.T) {
	requests, err := ParseRequests("sma:5", "sma:0", "nope")
	require.NoError(t, err)

	_, err = NewRunner(WithParallelism(1)).Run(context.Background(), testFrame(50), requests...)
	require.ErrorIs(t, err, indicator.ErrInvalidOption)
	assert.Contains(t, err.Error(), "sma:0")
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner().Run(ctx, testFrame(50), Request{Name: "sma", Options: []float64{5}})
	assert.ErrorIs(t, err, context.Canceled)
}
