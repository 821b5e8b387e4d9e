package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib"
	"github.com/raykavin/pantalib/pkg/logger"
)

var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:           "pantalib",
		Short:         "Technical analysis indicators over OHLCV tables",
		Version:       fmt.Sprintf("%s (catalog %s)", pantalib.Version, pantalib.CatalogVersion),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			pantalib.DefaultLog.SetLevel(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		buildListCmd(),
		buildComputeCmd(),
		buildBatchCmd(),
		buildDescribeCmd(),
		buildDownloadCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
