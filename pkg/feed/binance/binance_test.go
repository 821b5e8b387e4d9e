package binance

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/pantalib/pkg/feed"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func klines(count int) string {
	rows := make([]string, count)
	for i := range rows {
		open := baseTime.Add(time.Duration(i) * time.Hour).UnixMilli()
		value := float64(100 + i)
		rows[i] = fmt.Sprintf(`[%d,"%g","%g","%g","%g","10.5",%d,"0",1,"0","0","0"]`,
			open, value, value+2, value-2, value+1, open+3599999)
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func newServer(t *testing.T, failures int32) (*httptest.Server, *int32) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		if call <= failures {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":-1000,"msg":"unavailable"}`))
			return
		}

		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "1h", r.URL.Query().Get("interval"))

		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		assert.NoError(t, err)
		if limit > 5 {
			limit = 5
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(klines(limit)))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestSource_Dataframe(t *testing.T) {
	server, _ := newServer(t, 0)
	source := New(WithBaseURL(server.URL))

	df, err := source.Dataframe(context.Background(), "BTCUSDT", "1h", 3)
	require.NoError(t, err)

	require.Equal(t, 3, df.Len())
	assert.Equal(t, "BTCUSDT", df.Pair)
	assert.Equal(t, baseTime, df.Time[0])
	assert.Equal(t, []float64{101, 102, 103}, []float64(df.Close))
	assert.Equal(t, []float64{102, 103, 104}, []float64(df.High))
	assert.Equal(t, 10.5, df.Volume[0])
}

func TestSource_Retry(t *testing.T) {
	server, calls := newServer(t, 2)
	source := New(WithBaseURL(server.URL), WithRetries(3, time.Millisecond, 2*time.Millisecond))

	candles, err := source.CandlesByLimit(context.Background(), "BTCUSDT", "1h", 2)
	require.NoError(t, err)
	assert.Len(t, candles, 2)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestSource_RetryExhausted(t *testing.T) {
	server, calls := newServer(t, 10)
	source := New(WithBaseURL(server.URL), WithRetries(1, time.Millisecond, time.Millisecond))

	_, err := source.Dataframe(context.Background(), "BTCUSDT", "1h", 2)
	require.Error(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(calls))
}

func TestSource_Download(t *testing.T) {
	server, _ := newServer(t, 0)
	source := New(WithBaseURL(server.URL))

	buffer := bytes.NewBuffer(nil)
	err := source.Download(context.Background(), "BTCUSDT", "1h", baseTime, baseTime.Add(4*time.Hour), buffer)
	require.NoError(t, err)

	df, err := feed.ReadDataframe(buffer)
	require.NoError(t, err)
	assert.Equal(t, 5, df.Len())
	assert.Equal(t, 100.0, df.Open[0])
}

func TestConvertKlineToCandle(t *testing.T) {
	candle := convertKlineToCandle("ETHUSDT", binance.Kline{
		OpenTime: baseTime.UnixMilli(),
		Open:     "1.5",
		High:     "2",
		Low:      "1",
		Close:    "1.75",
		Volume:   "300",
	})

	assert.Equal(t, "ETHUSDT", candle.Pair)
	assert.Equal(t, baseTime, candle.Time)
	assert.Equal(t, 1.5, candle.Open)
	assert.Equal(t, 1.75, candle.Close)
	assert.Equal(t, 300.0, candle.Volume)
}

func TestCalculateBatchEnd(t *testing.T) {
	end := baseTime.Add(5000 * time.Hour)
	assert.Equal(t, baseTime.Add(999*time.Hour), calculateBatchEnd(baseTime, time.Hour, end))
	assert.Equal(t, end, calculateBatchEnd(end.Add(-time.Hour), time.Hour, end))
}

func TestWithTestNet(t *testing.T) {
	testnet := New(WithTestNet())
	live := New()

	assert.Equal(t, binance.BaseAPITestnetURL, testnet.client.BaseURL)
	assert.Equal(t, binance.BaseAPIMainURL, live.client.BaseURL)
	assert.False(t, binance.UseTestnet)
}
