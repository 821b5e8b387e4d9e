package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib"
	"github.com/raykavin/pantalib/pkg/batch"
	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/feed"
	"github.com/raykavin/pantalib/pkg/indicator"
	"github.com/raykavin/pantalib/pkg/storage"
)

// outputFlags controls where results are written
type outputFlags struct {
	output string
	store  string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output CSV file, stdout when empty")
	cmd.Flags().StringVar(&f.store, "store", "", "Also save results to a database (file path, memory or sqlite://path)")
}

func buildComputeCmd() *cobra.Command {
	var (
		source     sourceFlags
		out        outputFlags
		indicators []string
		options    []float64
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute indicators over a CSV file or Binance klines",
		Example: `  pantalib compute --csv btc.csv --indicator sma --options 20
  pantalib compute --binance BTCUSDT -i 4h --indicator bbands:20,2 --indicator rsi`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			requests, err := batch.ParseRequests(indicators...)
			if err != nil {
				return err
			}

			if len(options) > 0 {
				if len(requests) != 1 {
					return fmt.Errorf("--options needs exactly one --indicator, got %d", len(requests))
				}
				requests[0].Options = options
			}

			df, err := source.load(cmd.Context())
			if err != nil {
				return err
			}

			results, err := batch.NewRunner(batch.WithLogger(pantalib.DefaultLog)).
				Run(cmd.Context(), df, requests...)
			if err != nil {
				return err
			}

			return writeResults(out, source.name(), df, results)
		},
	}

	source.register(cmd)
	out.register(cmd)
	cmd.Flags().StringArrayVarP(&indicators, "indicator", "n", nil, "Indicator as name or name:options (e.g. bbands:20,2), repeatable")
	cmd.Flags().Float64SliceVar(&options, "options", nil, "Options of a single --indicator (e.g. 20,2)")
	_ = cmd.MarkFlagRequired("indicator")

	return cmd
}

// writeResults writes every computed series as a CSV column and saves them when a store is set
func writeResults(out outputFlags, pair string, df *core.Dataframe, results []batch.Result) error {
	columns := make([]*core.TimeSeries, 0, len(results))
	keys := make([]string, 0, len(results))

	for _, result := range results {
		if result.Series == nil {
			pantalib.DefaultLog.Warnf("%s: not enough rows for the warm-up window, skipped", result.Request)
			continue
		}

		desc, err := indicator.Default().Lookup(result.Request.Name)
		if err != nil {
			return err
		}

		headers := desc.LabelsWith(result.Request.Options...)
		for i, label := range desc.Labels() {
			column := *result.Series[i]
			column.Name = headers[i]
			columns = append(columns, &column)
			keys = append(keys, storage.Key(pair, label, result.Request.Options))
		}
	}

	if out.store != "" {
		if err := saveResults(out.store, keys, columns); err != nil {
			return err
		}
	}

	writer, err := openOutput(out.output)
	if err != nil {
		return err
	}
	defer writer.Close()

	return feed.WriteCSV(writer, df.Index(), columns...)
}

func saveResults(dsn string, keys []string, columns []*core.TimeSeries) error {
	db, err := storage.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	for i, column := range columns {
		if err := db.Save(keys[i], column); err != nil {
			return err
		}
	}

	pantalib.DefaultLog.Infof("saved %d series to %s", len(columns), dsn)
	return nil
}
