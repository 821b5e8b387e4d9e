package main

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib"
	"github.com/raykavin/pantalib/pkg/batch"
	"github.com/raykavin/pantalib/pkg/indicator"
)

func buildBatchCmd() *cobra.Command {
	var (
		source      sourceFlags
		out         outputFlags
		planFile    string
		parallelism int
		progress    bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute every indicator listed in a YAML plan",
		Example: `  pantalib batch --plan plan.yaml --csv btc.csv --output indicators.csv
  pantalib batch --plan plan.yaml --binance ETHUSDT --store sqlite://indicators.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := batch.LoadPlan(planFile)
			if err != nil {
				return err
			}

			if err := plan.Validate(indicator.Default()); err != nil {
				return err
			}

			if source.pair == "" {
				source.pair = plan.Pair
			}

			df, err := source.load(cmd.Context())
			if err != nil {
				return err
			}

			options := []batch.Option{
				batch.WithLogger(pantalib.DefaultLog),
				batch.WithParallelism(parallelism),
			}

			var bar *progressbar.ProgressBar
			if progress {
				bar = progressbar.Default(int64(len(plan.Indicators)), "computing")
				options = append(options, batch.WithResultHook(func(batch.Result) {
					if err := bar.Add(1); err != nil {
						pantalib.DefaultLog.Warnf("update progressbar fail: %v", err)
					}
				}))
			}

			results, err := batch.NewRunner(options...).Run(cmd.Context(), df, plan.Indicators...)
			if err != nil {
				return err
			}

			if bar != nil {
				if err := bar.Close(); err != nil {
					pantalib.DefaultLog.Warnf("close progressbar fail: %v", err)
				}
			}

			return writeResults(out, source.name(), df, results)
		},
	}

	source.register(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&planFile, "plan", "", "YAML plan listing the indicators")
	cmd.Flags().IntVarP(&parallelism, "parallelism", "j", 0, "Concurrent computations, number of CPUs when 0")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
