package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Parse decodes tab-separated text whose header row names the series.
//
//	date	New York	San Francisco	Austin
//	20180101	63.4	62.7	72.2
func Parse(text string, opts Options) (*Dataset, error) {
	return ParseReader(strings.NewReader(text), opts)
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader, opts Options) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var rows []row
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, newParseError(perr.Line, "", perr.Err)
			}
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, row{line: line, cells: cells})
	}

	return fromRows(rows, func(cell string) (time.Time, error) {
		return time.Parse(opts.layout(), strings.TrimSpace(cell))
	})
}

// row is one table row and the 1-based source line it came from.
type row struct {
	line  int
	cells []string
}

// fromRows turns a header row plus data rows into a dataset.
func fromRows(rows []row, parseDate func(string) (time.Time, error)) (*Dataset, error) {
	rows = trimEmptyRows(rows)
	if len(rows) < 2 {
		return nil, ErrEmpty
	}

	header := rows[0].cells
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: header needs a date column and at least one series", ErrMalformed)
	}
	names := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		names = append(names, strings.TrimSpace(h))
	}

	records := make([]Record, 0, len(rows)-1)
	for _, r := range rows[1:] {
		line, row := r.line, r.cells
		if len(row) != len(header) {
			return nil, newParseError(line, "", fmt.Errorf("expected %d columns, got %d", len(header), len(row)))
		}

		date, err := parseDate(row[0])
		if err != nil {
			return nil, newParseError(line, strings.TrimSpace(header[0]), err)
		}

		values := make(map[string]float64, len(names))
		for j, name := range names {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j+1]), 64)
			if err != nil {
				return nil, newParseError(line, name, err)
			}
			values[name] = v
		}
		records = append(records, Record{Date: date, Values: values})
	}

	return New(names, records)
}

func trimEmptyRows(rows []row) []row {
	out := rows[:0]
	for _, r := range rows {
		if len(r.cells) == 0 || (len(r.cells) == 1 && strings.TrimSpace(r.cells[0]) == "") {
			continue
		}
		out = append(out, r)
	}
	return out
}
