package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/pantalib"
	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/feed"
	"github.com/raykavin/pantalib/pkg/feed/binance"
)

// sourceFlags selects where the input table comes from
type sourceFlags struct {
	csvFile    string
	pair       string
	binance    string
	interval   string
	limit      int
	heikinAshi bool
	resample   string
	window     string
	testnet    bool
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.csvFile, "csv", "c", "", "Input CSV file (e.g. ./btc-1h.csv)")
	cmd.Flags().StringVarP(&f.pair, "pair", "p", "", "Pair name stored with CSV input")
	cmd.Flags().StringVarP(&f.binance, "binance", "b", "", "Fetch klines of a Binance spot pair (e.g. BTCUSDT)")
	cmd.Flags().StringVarP(&f.interval, "interval", "i", "1h", "Kline interval or CSV source timeframe")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", 500, "Number of Binance klines")
	cmd.Flags().BoolVar(&f.heikinAshi, "heikin-ashi", false, "Convert candles to Heikin-Ashi")
	cmd.Flags().StringVar(&f.resample, "timeframe", "", "Resample CSV rows from --interval to this timeframe (e.g. 4h)")
	cmd.Flags().StringVar(&f.window, "window", "", "Keep only the last window of CSV rows (e.g. 30d)")
	cmd.Flags().BoolVar(&f.testnet, "testnet", false, "Use the Binance testnet")
}

func (f *sourceFlags) name() string {
	if f.binance != "" {
		return f.binance
	}
	return f.pair
}

// load reads the table selected by the flags
func (f *sourceFlags) load(ctx context.Context) (*core.Dataframe, error) {
	switch {
	case f.csvFile != "" && f.binance != "":
		return nil, errors.New("--csv and --binance are mutually exclusive")

	case f.csvFile != "":
		options := []feed.Option{feed.WithPair(f.pair)}
		if f.heikinAshi {
			options = append(options, feed.WithHeikinAshi())
		}
		if f.resample != "" {
			options = append(options, feed.WithResample(f.interval, f.resample))
		}
		if f.window != "" {
			window, err := str2duration.ParseDuration(f.window)
			if err != nil {
				return nil, fmt.Errorf("invalid window: %w", err)
			}
			options = append(options, feed.WithLimit(window))
		}

		pantalib.DefaultLog.Debugf("reading %s", f.csvFile)
		return feed.ReadCSV(f.csvFile, options...)

	case f.binance != "":
		pantalib.DefaultLog.Debugf("fetching %d %s klines of %s", f.limit, f.interval, f.binance)
		return f.source().Dataframe(ctx, f.binance, f.interval, f.limit)

	default:
		return nil, errors.New("one of --csv or --binance is required")
	}
}

func (f *sourceFlags) source(extra ...binance.Option) *binance.Source {
	options := []binance.Option{binance.WithLogger(pantalib.DefaultLog)}
	if f.heikinAshi {
		options = append(options, binance.WithHeikinAshi())
	}
	if f.testnet {
		options = append(options, binance.WithTestNet())
	}
	return binance.New(append(options, extra...)...)
}

// openOutput returns stdout when path is empty
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
