// Package binance loads OHLCV tables from the Binance spot klines API.
package binance

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"

	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/logger"
	"github.com/raykavin/pantalib/pkg/logger/zerolog"
)

const defaultRetries = 3

var ErrNoCandles = errors.New("no candles returned")

// Source fetches candles from Binance
type Source struct {
	client     *binance.Client
	log        logger.Logger
	heikinAshi bool
	progress   bool
	retries    int
	minBackoff time.Duration
	maxBackoff time.Duration
}

// Option configures a Source
type Option func(*Source)

// WithCredentials sets the API credentials, klines are public so they are optional
func WithCredentials(key, secret string) Option {
	return func(s *Source) {
		s.client.APIKey = key
		s.client.SecretKey = secret
	}
}

// WithTestNet points this source's client at the Binance spot testnet
func WithTestNet() Option {
	return func(s *Source) {
		s.client.BaseURL = binance.BaseAPITestnetURL
	}
}

// WithBaseURL overrides the REST endpoint
func WithBaseURL(url string) Option {
	return func(s *Source) {
		s.client.BaseURL = url
	}
}

// WithHeikinAshi converts the fetched candles to Heikin-Ashi
func WithHeikinAshi() Option {
	return func(s *Source) {
		s.heikinAshi = true
	}
}

// WithLogger sets the logger used to report retries and downloads
func WithLogger(log logger.Logger) Option {
	return func(s *Source) {
		s.log = log
	}
}

// WithProgress shows a progress bar while downloading
func WithProgress() Option {
	return func(s *Source) {
		s.progress = true
	}
}

// WithRetries sets how many times a failed request is retried and the backoff bounds between attempts
func WithRetries(retries int, minimum, maximum time.Duration) Option {
	return func(s *Source) {
		s.retries = retries
		s.minBackoff = minimum
		s.maxBackoff = maximum
	}
}

// New creates a Binance spot source
func New(options ...Option) *Source {
	source := &Source{
		client:     binance.NewClient("", ""),
		log:        zerolog.Nop(),
		retries:    defaultRetries,
		minBackoff: 100 * time.Millisecond,
		maxBackoff: time.Second,
	}

	for _, option := range options {
		option(source)
	}

	return source
}

// Dataframe fetches the last limit complete candles of pair as a dataframe
func (s *Source) Dataframe(ctx context.Context, pair, interval string, limit int) (*core.Dataframe, error) {
	candles, err := s.CandlesByLimit(ctx, pair, interval, limit)
	if err != nil {
		return nil, err
	}

	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoCandles, pair, interval)
	}

	return core.NewDataframe(pair, candles), nil
}

// CandlesByLimit gets the last limit complete candles of pair
func (s *Source) CandlesByLimit(ctx context.Context, pair, interval string, limit int) ([]core.Candle, error) {
	var data []*binance.Kline

	err := s.retry(ctx, func() (err error) {
		data, err = s.client.NewKlinesService().
			Symbol(pair).
			Interval(interval).
			Limit(limit + 1). // +1 to discard the last incomplete candle
			Do(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(data) > 0 {
		data = data[:len(data)-1]
	}

	return s.convert(pair, data), nil
}

// CandlesByPeriod gets the candles of pair opened between start and end
func (s *Source) CandlesByPeriod(ctx context.Context, pair, interval string, start, end time.Time) ([]core.Candle, error) {
	var data []*binance.Kline

	err := s.retry(ctx, func() (err error) {
		data, err = s.client.NewKlinesService().
			Symbol(pair).
			Interval(interval).
			StartTime(start.UnixMilli()).
			EndTime(end.UnixMilli()).
			Limit(batchSize).
			Do(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.convert(pair, data), nil
}

func (s *Source) convert(pair string, data []*binance.Kline) []core.Candle {
	heikinAshi := core.NewHeikinAshi()

	candles := make([]core.Candle, 0, len(data))
	for _, d := range data {
		candle := convertKlineToCandle(pair, *d)
		if s.heikinAshi {
			candle = heikinAshi.Next(candle)
		}
		candles = append(candles, candle)
	}

	return candles
}

// retry runs call until it succeeds, the retries are exhausted or ctx is done
func (s *Source) retry(ctx context.Context, call func() error) error {
	b := &backoff.Backoff{Min: s.minBackoff, Max: s.maxBackoff}

	for {
		err := call()
		if err == nil {
			return nil
		}

		if int(b.Attempt()) >= s.retries {
			return fmt.Errorf("binance klines: %w", err)
		}

		wait := b.Duration()
		s.log.WithError(err).Warnf("klines request failed, retrying in %s", wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// convertKlineToCandle converts a Binance kline to a core.Candle
func convertKlineToCandle(pair string, k binance.Kline) core.Candle {
	candle := core.Candle{
		Pair: pair,
		Time: time.UnixMilli(k.OpenTime).UTC(),
	}

	candle.Open, _ = strconv.ParseFloat(k.Open, 64)
	candle.Close, _ = strconv.ParseFloat(k.Close, 64)
	candle.High, _ = strconv.ParseFloat(k.High, 64)
	candle.Low, _ = strconv.ParseFloat(k.Low, 64)
	candle.Volume, _ = strconv.ParseFloat(k.Volume, 64)

	return candle
}
