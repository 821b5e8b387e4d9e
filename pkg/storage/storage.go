// Package storage persists computed indicator series
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"

	"github.com/raykavin/pantalib/pkg/core"
)

var ErrNotFound = errors.New("series not found")

// Storage saves and loads series by key
type Storage interface {
	// Save stores series under key, replacing any previous value
	Save(key string, series *core.TimeSeries) error
	// Load returns the series stored under key or ErrNotFound
	Load(key string) (*core.TimeSeries, error)
	// Delete removes key, deleting a missing key is not an error
	Delete(key string) error
	// Keys returns the sorted keys starting with prefix
	Keys(prefix string) ([]string, error)
	// Recent returns up to limit keys, most recently saved first
	Recent(limit int) ([]string, error)
	// Close releases the underlying database
	Close() error
}

// Open picks a backend from dsn: "memory" or ":memory:" for an in-memory
// buntdb, "sqlite://<path>" for SQLite through gorm and any other value as a
// buntdb file path
func Open(dsn string) (Storage, error) {
	var (
		storage Storage
		err     error
	)

	switch {
	case dsn == "memory" || dsn == ":memory:":
		storage, err = NewFromMemory()
	case strings.HasPrefix(dsn, "sqlite://"):
		storage, err = NewSQLite(strings.TrimPrefix(dsn, "sqlite://"))
	default:
		storage, err = NewFromFile(dsn)
	}

	if err != nil {
		return nil, err
	}
	return storage, nil
}

// Key builds the storage key of an indicator result, e.g. BTCUSDT:bbands:20,2
func Key(pair, indicator string, options []float64) string {
	formatted := lo.Map(options, func(option float64, _ int) string {
		return core.FormatWithOptimalPrecision(option, 8)
	})
	return fmt.Sprintf("%s:%s:%s", pair, strings.ToLower(indicator), strings.Join(formatted, ","))
}

// hasPrefix filters keys returned by a backend query down to the exact prefix
func hasPrefix(keys []string, prefix string) []string {
	return lo.Filter(keys, func(key string, _ int) bool {
		return strings.HasPrefix(key, prefix)
	})
}

var lastStamp atomic.Int64

// stamp returns the wall clock in nanoseconds, strictly increasing within the
// process so that saves made in the same clock tick keep their order
func stamp() int64 {
	for {
		last := lastStamp.Load()
		now := time.Now().UnixNano()
		if now <= last {
			now = last + 1
		}
		if lastStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

// record is the serialized form of a series. Values are kept as strings
// because JSON has no NaN. UpdatedAt holds unix nanoseconds so that it sorts
// numerically.
type record struct {
	Name      string   `json:"name"`
	Time      []int64  `json:"time,omitempty"`
	Values    []string `json:"values"`
	UpdatedAt int64    `json:"updated_at"`
}

func encode(series *core.TimeSeries, updatedAt int64) ([]byte, error) {
	if series == nil {
		return nil, errors.New("nil series")
	}

	rec := record{
		Name:      series.Name,
		Values:    make([]string, len(series.Values)),
		UpdatedAt: updatedAt,
	}

	for i, value := range series.Values {
		rec.Values[i] = core.FormatFloat(value, -1)
	}

	if series.Time != nil {
		rec.Time = make([]int64, len(series.Time))
		for i, t := range series.Time {
			rec.Time[i] = t.UnixNano()
		}
	}

	return json.Marshal(rec)
}

func decode(content []byte) (*core.TimeSeries, error) {
	var rec record
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal series: %w", err)
	}

	values := make([]float64, len(rec.Values))
	for i, value := range rec.Values {
		var err error
		if values[i], err = parseFloat(value); err != nil {
			return nil, err
		}
	}

	var index []time.Time
	if rec.Time != nil {
		index = make([]time.Time, len(rec.Time))
		for i, t := range rec.Time {
			index[i] = time.Unix(0, t).UTC()
		}
	}

	return core.NewTimeSeries(rec.Name, index, values), nil
}
