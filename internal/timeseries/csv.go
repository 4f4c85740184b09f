package timeseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	time.RFC3339,
}

// ParseCSV reads a rainfall table: the first column is the date index, every
// further column is one station. Non-numeric cells become NaN (the usual
// encoding for missing observations) and rows are sorted by date.
func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv needs a header row and at least one data row")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("csv needs a date column and at least one station column")
	}
	stations := header[1:]

	type row struct {
		date   time.Time
		values []float64
	}
	rows := make([]row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("row %d: got %d fields, want %d", i+2, len(record), len(header))
		}
		date, err := parseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		values := make([]float64, len(stations))
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				v = math.NaN()
			}
			values[j] = v
		}
		rows = append(rows, row{date, values})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	index := make([]time.Time, len(rows))
	for i, r := range rows {
		index[i] = r.date
	}

	table := NewTable(index)
	for j, station := range stations {
		series := make([]float64, len(rows))
		for i, r := range rows {
			series[i] = r.values[j]
		}
		if err := table.AddStation(station, series); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// WriteCSV writes a table in the same shape ParseCSV reads: a DATE column
// followed by one column per station. NaN cells are written empty.
func WriteCSV(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)

	header := append([]string{"DATE"}, table.Stations()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i, t := range table.Index() {
		record := make([]string, 0, len(header))
		record = append(record, t.Format("2006-01-02"))
		for _, station := range table.Stations() {
			v := table.Series(station)[i]
			if math.IsNaN(v) {
				record = append(record, "")
			} else {
				record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
