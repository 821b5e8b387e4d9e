// Package feed loads OHLCV tables from CSV files and writes indicator
// results back to CSV.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/raykavin/pantalib/pkg/core"
)

var (
	ErrEmptyFile     = errors.New("empty csv input")
	ErrMissingColumn = errors.New("missing csv column")

	// Header order of files without a header row
	DefaultHeaders = []string{"time", "open", "close", "low", "high", "volume"}

	timeHeaders = []string{"time", "timestamp", "date", "datetime"}
	timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}
)

// Option configures how a CSV table is read
type Option func(*options)

type options struct {
	pair       string
	heikinAshi bool
	from, to   string
	limit      time.Duration
}

// WithPair sets the pair stored in the candles and the dataframe
func WithPair(pair string) Option {
	return func(o *options) { o.pair = pair }
}

// WithHeikinAshi converts every row into a Heikin-Ashi candle while reading
func WithHeikinAshi() Option {
	return func(o *options) { o.heikinAshi = true }
}

// WithResample aggregates rows of the from timeframe into candles of the to timeframe, e.g. 1m to 1h
func WithResample(from, to string) Option {
	return func(o *options) { o.from, o.to = from, to }
}

// WithLimit keeps only the rows within duration of the last one
func WithLimit(duration time.Duration) Option {
	return func(o *options) { o.limit = duration }
}

// header maps the CSV columns to their positions
type header struct {
	index      map[string]int
	additional []string
	custom     bool
}

func (h header) has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// ReadCSV reads the file at path into a dataframe. Columns missing from the
// header are left empty, so indicators reading them report a missing column.
func ReadCSV(path string, opts ...Option) (*core.Dataframe, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadDataframe(file, opts...)
}

// ReadDataframe reads a CSV table from r
func ReadDataframe(r io.Reader, opts ...Option) (*core.Dataframe, error) {
	config := newOptions(opts)

	candles, head, err := readCandles(r, config)
	if err != nil {
		return nil, err
	}

	df := core.NewDataframe(config.pair, candles)
	if !head.custom {
		return df, nil
	}

	// Drop OHLCV columns absent from the file
	for _, column := range []struct {
		name   string
		series *core.Series[float64]
	}{
		{core.ColumnOpen, &df.Open},
		{core.ColumnHigh, &df.High},
		{core.ColumnLow, &df.Low},
		{core.ColumnClose, &df.Close},
		{core.ColumnVolume, &df.Volume},
	} {
		if !head.has(column.name) {
			*column.series = nil
		}
	}

	return df, nil
}

// ReadCandles reads a CSV table from r as candles ordered as in the file
func ReadCandles(r io.Reader, opts ...Option) ([]core.Candle, error) {
	candles, _, err := readCandles(r, newOptions(opts))
	return candles, err
}

func newOptions(opts []Option) options {
	var config options
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func readCandles(r io.Reader, config options) ([]core.Candle, header, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, header{}, err
	}

	if len(lines) == 0 {
		return nil, header{}, ErrEmptyFile
	}

	head, err := parseHeaders(lines[0])
	if err != nil {
		return nil, header{}, err
	}
	if head.custom {
		lines = lines[1:]
	}

	candles := make([]core.Candle, 0, len(lines))
	for i, line := range lines {
		candle, err := parseCandle(line, head, config.pair)
		if err != nil {
			return nil, header{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		candles = append(candles, candle)
	}

	if config.heikinAshi {
		candles = core.HeikinAshiCandles(candles)
	}

	if config.from != "" && config.to != "" {
		if candles, err = Resample(candles, config.from, config.to); err != nil {
			return nil, header{}, err
		}
	}

	if config.limit > 0 {
		candles = Limit(candles, config.limit)
	}

	return candles, head, nil
}

// parseHeaders detects whether the first row is a header. Files without one
// follow DefaultHeaders.
func parseHeaders(first []string) (header, error) {
	if _, err := parseTime(first[0]); err == nil {
		return header{index: indexOf(DefaultHeaders)}, nil
	}

	head := header{index: make(map[string]int), custom: true}
	for index, name := range first {
		name = strings.ToLower(strings.TrimSpace(name))
		if lo.Contains(timeHeaders, name) {
			name = "time"
		}

		head.index[name] = index
		if !lo.Contains(DefaultHeaders, name) {
			head.additional = append(head.additional, name)
		}
	}

	if !head.has("time") {
		return header{}, fmt.Errorf("%w: time", ErrMissingColumn)
	}

	return head, nil
}

func indexOf(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return index
}

func parseCandle(line []string, head header, pair string) (core.Candle, error) {
	value := func(name string) (float64, error) {
		position, ok := head.index[name]
		if !ok {
			return 0, nil
		}
		if position >= len(line) {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return strconv.ParseFloat(strings.TrimSpace(line[position]), 64)
	}

	timestamp, err := parseTime(line[head.index["time"]])
	if err != nil {
		return core.Candle{}, err
	}

	candle := core.Candle{Pair: pair, Time: timestamp}
	for _, field := range []struct {
		name   string
		target *float64
	}{
		{"open", &candle.Open},
		{"close", &candle.Close},
		{"low", &candle.Low},
		{"high", &candle.High},
		{"volume", &candle.Volume},
	} {
		if *field.target, err = value(field.name); err != nil {
			return core.Candle{}, err
		}
	}

	if len(head.additional) > 0 {
		candle.Metadata = make(map[string]float64, len(head.additional))
		for _, name := range head.additional {
			if candle.Metadata[name], err = value(name); err != nil {
				return core.Candle{}, err
			}
		}
	}

	return candle, nil
}

// parseTime accepts unix timestamps in seconds or milliseconds and the usual date layouts
func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if unix, err := strconv.ParseInt(value, 10, 64); err == nil {
		if unix > 1e12 {
			return time.UnixMilli(unix).UTC(), nil
		}
		return time.Unix(unix, 0).UTC(), nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid time %q", value)
}

// Limit keeps the candles within duration of the last one
func Limit(candles []core.Candle, duration time.Duration) []core.Candle {
	if len(candles) == 0 {
		return candles
	}

	start := candles[len(candles)-1].Time.Add(-duration)
	return lo.Filter(candles, func(candle core.Candle, _ int) bool {
		return candle.Time.After(start)
	})
}
