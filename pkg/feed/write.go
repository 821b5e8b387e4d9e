package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/raykavin/pantalib/pkg/core"
)

// WriteCSV writes the series as columns of a CSV table. The first column
// holds the unix timestamps of index, or the row number when index is nil.
// Every series must be as long as the table.
func WriteCSV(w io.Writer, index []time.Time, series ...*core.TimeSeries) error {
	size := len(index)
	if index == nil && len(series) > 0 {
		size = series[0].Len()
	}

	head := make([]string, 0, len(series)+1)
	head = append(head, "time")
	for _, s := range series {
		if s.Len() != size {
			return fmt.Errorf("series %s has %d values, expected %d", s.Name, s.Len(), size)
		}
		head = append(head, s.Name)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(head); err != nil {
		return err
	}

	record := make([]string, len(head))
	for i := 0; i < size; i++ {
		if index != nil {
			record[0] = strconv.FormatInt(index[i].Unix(), 10)
		} else {
			record[0] = strconv.Itoa(i)
		}

		for j, s := range series {
			record[j+1] = core.FormatFloat(s.Values[i], -1)
		}

		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCandles writes candles in the DefaultHeaders layout, header row included
func WriteCandles(w io.Writer, candles []core.Candle, precision int) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(DefaultHeaders); err != nil {
		return err
	}

	for _, candle := range candles {
		if err := writer.Write(candle.ToSlice(precision)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
