package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/raykavin/pantalib/pkg/feed/binance"
)

const dateLayout = "2006-01-02"

func buildDownloadCmd() *cobra.Command {
	var (
		source     sourceFlags
		days       int
		startDate  string
		endDate    string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download Binance klines to a CSV file readable by --csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := downloadRange(days, startDate, endDate)
			if err != nil {
				return err
			}

			writer, err := openOutput(outputFile)
			if err != nil {
				return err
			}
			defer writer.Close()

			return source.source(binance.WithProgress()).
				Download(cmd.Context(), source.binance, source.interval, start, end, writer)
		},
	}

	source.register(cmd)
	cmd.Flags().IntVarP(&days, "days", "d", 30, "Number of days to download")
	cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date (e.g. 2021-12-01)")
	cmd.Flags().StringVarP(&endDate, "end", "e", "", "End date (e.g. 2021-12-31)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (e.g. ./btc.csv)")
	_ = cmd.MarkFlagRequired("binance")

	return cmd
}

// downloadRange returns the last days up to now, or the given dates when both are set
func downloadRange(days int, startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" && endDate == "" {
		end := time.Now().UTC().Truncate(time.Minute)
		return end.AddDate(0, 0, -days), end, nil
	}

	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, errors.New("START and END dates must be provided together")
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
