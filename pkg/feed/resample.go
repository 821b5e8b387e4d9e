package feed

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/pantalib/pkg/core"
)

// Resample aggregates candles of the source timeframe into candles of the
// target timeframe. Leading rows before the first period boundary and a
// trailing incomplete period are dropped.
func Resample(candles []core.Candle, sourceTimeframe, targetTimeframe string) ([]core.Candle, error) {
	if len(candles) == 0 || sourceTimeframe == targetTimeframe {
		return candles, nil
	}

	start, err := firstPeriodCandle(candles, sourceTimeframe, targetTimeframe)
	if err != nil {
		return nil, err
	}

	target := make([]core.Candle, 0, len(candles)/2)

	var current core.Candle
	inPeriod := false

	for _, candle := range candles[start:] {
		if !inPeriod {
			current = candle
			current.Metadata = lo.Assign(candle.Metadata)
			inPeriod = true
		} else {
			current.High = math.Max(current.High, candle.High)
			current.Low = math.Min(current.Low, candle.Low)
			current.Close = candle.Close
			current.Volume += candle.Volume
			for key, value := range candle.Metadata {
				current.Metadata[key] = value
			}
		}

		isLast, err := isLastCandlePeriod(candle.Time, sourceTimeframe, targetTimeframe)
		if err != nil {
			return nil, err
		}

		if isLast {
			target = append(target, current)
			inPeriod = false
		}
	}

	return target, nil
}

// firstPeriodCandle returns the index of the first candle opening a target period
func firstPeriodCandle(candles []core.Candle, sourceTimeframe, targetTimeframe string) (int, error) {
	for i := range candles {
		isFirst, err := isFirstCandlePeriod(candles[i].Time, sourceTimeframe, targetTimeframe)
		if err != nil {
			return 0, err
		}
		if isFirst {
			return i, nil
		}
	}
	return 0, nil
}

func isFirstCandlePeriod(t time.Time, sourceTimeframe, targetTimeframe string) (bool, error) {
	sourceDuration, err := str2duration.ParseDuration(sourceTimeframe)
	if err != nil {
		return false, err
	}

	prev := t.Add(-sourceDuration).UTC()
	return isLastCandlePeriod(prev, sourceTimeframe, targetTimeframe)
}

func isLastCandlePeriod(t time.Time, sourceTimeframe, targetTimeframe string) (bool, error) {
	if sourceTimeframe == targetTimeframe {
		return true, nil
	}

	sourceDuration, err := str2duration.ParseDuration(sourceTimeframe)
	if err != nil {
		return false, err
	}

	next := t.Add(sourceDuration).UTC()
	return isTimeOnPeriodBoundary(next, targetTimeframe)
}

func isTimeOnPeriodBoundary(t time.Time, targetTimeframe string) (bool, error) {
	switch targetTimeframe {
	case "1m":
		return t.Second() == 0, nil
	case "5m":
		return t.Minute()%5 == 0 && t.Second() == 0, nil
	case "10m":
		return t.Minute()%10 == 0 && t.Second() == 0, nil
	case "15m":
		return t.Minute()%15 == 0 && t.Second() == 0, nil
	case "30m":
		return t.Minute()%30 == 0 && t.Second() == 0, nil
	case "1h":
		return t.Minute() == 0 && t.Second() == 0, nil
	case "2h":
		return t.Hour()%2 == 0 && t.Minute() == 0 && t.Second() == 0, nil
	case "4h":
		return t.Hour()%4 == 0 && t.Minute() == 0 && t.Second() == 0, nil
	case "12h":
		return t.Hour()%12 == 0 && t.Minute() == 0 && t.Second() == 0, nil
	case "1d":
		return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0, nil
	case "1w":
		return t.Weekday() == time.Sunday && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0, nil
	default:
		return false, fmt.Errorf("invalid timeframe: %s", targetTimeframe)
	}
}
