package main

import (
	"fmt"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib/pkg/batch"
	"github.com/raykavin/pantalib/pkg/core"
	"github.com/raykavin/pantalib/pkg/indicator"
)

func buildDescribeCmd() *cobra.Command {
	var (
		source  sourceFlags
		bins    int
		samples int
	)

	cmd := &cobra.Command{
		Use:     "describe <indicator>",
		Short:   "Print summary statistics and a histogram of an indicator",
		Example: `  pantalib describe rsi:14 --csv btc.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := batch.ParseRequest(args[0])
			if err != nil {
				return err
			}

			desc, err := indicator.Default().Lookup(request.Name)
			if err != nil {
				return err
			}

			df, err := source.load(cmd.Context())
			if err != nil {
				return err
			}

			results, err := indicator.Invoke(desc, df, request.Options...)
			if err != nil {
				return err
			}
			if results == nil {
				return fmt.Errorf("%s: %d rows do not cover the warm-up window", request, df.Len())
			}

			warmup, err := desc.Warmup(request.Options...)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Output", "Count", "Mean", "Std Dev", "Min", "Median", "Max", "Mean 95% CI"})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)

			labels := desc.Labels()
			for i, series := range results {
				// Back-filled warm-up rows would skew the statistics
				summary := core.Summarize(series.Values[warmup:])
				interval := core.Bootstrap(series.Values[warmup:], core.MeanOf, samples, 0.95)
				table.Append([]string{
					labels[i],
					fmt.Sprintf("%d", summary.Count),
					fmt.Sprintf("%.4f", summary.Mean),
					fmt.Sprintf("%.4f", summary.StdDev),
					fmt.Sprintf("%.4f", summary.Min),
					fmt.Sprintf("%.4f", summary.Median),
					fmt.Sprintf("%.4f", summary.Max),
					fmt.Sprintf("%.4f .. %.4f", interval.Lower, interval.Upper),
				})
			}
			table.Render()

			for i, series := range results {
				fmt.Printf("\n%s (%d rows, warm-up %d)\n", labels[i], series.Len(), warmup)
				hist := histogram.Hist(bins, series.Values[warmup:])
				if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().IntVar(&bins, "bins", 15, "Histogram bins")
	cmd.Flags().IntVar(&samples, "samples", 1000, "Bootstrap samples of the mean confidence interval")

	return cmd
}
