package binance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/pantalib/pkg/feed"
)

const batchSize = 1000

// Download fetches the candles of pair between start and end in batches and
// writes them to w in the feed.DefaultHeaders CSV layout
func (s *Source) Download(ctx context.Context, pair, interval string, start, end time.Time, w io.Writer) error {
	step, err := str2duration.ParseDuration(interval)
	if err != nil {
		return fmt.Errorf("invalid interval %s: %w", interval, err)
	}

	if !start.Before(end) {
		return fmt.Errorf("start %s is not before end %s", start, end)
	}

	total := int(end.Sub(start)/step) + 1
	s.log.Infof("Downloading %d candles of %s for %s", total, interval, pair)

	var bar *progressbar.ProgressBar
	if s.progress {
		bar = progressbar.Default(int64(total))
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(feed.DefaultHeaders); err != nil {
		return err
	}

	missing := 0
	for batchStart := start; !batchStart.After(end); batchStart = batchStart.Add(step * batchSize) {
		batchEnd := calculateBatchEnd(batchStart, step, end)

		candles, err := s.CandlesByPeriod(ctx, pair, interval, batchStart, batchEnd)
		if err != nil {
			return err
		}

		for _, candle := range candles {
			if err := writer.Write(candle.ToSlice(-1)); err != nil {
				return err
			}
		}

		if expected := int(batchEnd.Sub(batchStart)/step) + 1; len(candles) < expected {
			missing += expected - len(candles)
		}

		if bar != nil {
			if err := bar.Add(len(candles)); err != nil {
				s.log.Warnf("update progressbar fail: %v", err)
			}
		}
	}

	if bar != nil {
		if err := bar.Close(); err != nil {
			s.log.Warnf("close progressbar fail: %v", err)
		}
	}

	if missing > 0 {
		s.log.Warnf("%d missing candles", missing)
	}

	writer.Flush()
	return writer.Error()
}

// calculateBatchEnd returns the open time of the last candle of a batch
func calculateBatchEnd(batchStart time.Time, step time.Duration, end time.Time) time.Time {
	potentialEnd := batchStart.Add(step * (batchSize - 1))
	if potentialEnd.Before(end) {
		return potentialEnd
	}
	return end
}
