// Package dataset holds the tabular time series a chart is drawn from.
package dataset

import (
	"fmt"
	"math"
	"time"
)

// DefaultDateLayout is the layout of the date column in the source text.
const DefaultDateLayout = "20060102"

// Options configures how a table is decoded.
type Options struct {
	// DateLayout is a time.Parse layout for the first column.
	DateLayout string
}

// DefaultOptions returns the options matching the embedded sample.
func DefaultOptions() Options {
	return Options{DateLayout: DefaultDateLayout}
}

func (o Options) layout() string {
	if o.DateLayout == "" {
		return DefaultDateLayout
	}
	return o.DateLayout
}

// Record is one row of the table: a calendar day and a reading per series.
type Record struct {
	Date   time.Time
	Values map[string]float64
}

// Point is a single (date, value) pair of a series.
type Point struct {
	Date  time.Time
	Value float64
}

// Series is one named sequence of values over the date axis.
type Series struct {
	Name   string
	Values []Point
}

// Stats summarizes a single series.
type Stats struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
	Last float64
}

// Dataset is an ordered list of records sharing the same series names.
type Dataset struct {
	names   []string
	records []Record
}

// New builds a dataset from series names in column order and their records.
func New(names []string, records []Record) (*Dataset, error) {
	if len(names) == 0 || len(records) == 0 {
		return nil, ErrEmpty
	}
	for i, rec := range records {
		for _, name := range names {
			if _, ok := rec.Values[name]; !ok {
				return nil, fmt.Errorf("%w: record %d has no value for %q", ErrMalformed, i, name)
			}
		}
	}
	return &Dataset{
		names:   append([]string(nil), names...),
		records: records,
	}, nil
}

// Names returns the series names in header order.
func (d *Dataset) Names() []string {
	return append([]string(nil), d.names...)
}

// Records returns the records in input order.
func (d *Dataset) Records() []Record {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Series projects the record list onto one series name.
func (d *Dataset) Series(name string) (Series, error) {
	found := false
	for _, n := range d.names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}

	values := make([]Point, 0, len(d.records))
	for _, rec := range d.records {
		values = append(values, Point{Date: rec.Date, Value: rec.Values[name]})
	}
	return Series{Name: name, Values: values}, nil
}

// AllSeries projects every series, in header order.
func (d *Dataset) AllSeries() []Series {
	all := make([]Series, 0, len(d.names))
	for _, name := range d.names {
		s, _ := d.Series(name)
		all = append(all, s)
	}
	return all
}

// DateExtent returns the first and last date of the table.
func (d *Dataset) DateExtent() (time.Time, time.Time) {
	first, last := d.records[0].Date, d.records[0].Date
	for _, rec := range d.records[1:] {
		if rec.Date.Before(first) {
			first = rec.Date
		}
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	return first, last
}

// ValueDomain returns the minimum and maximum reading across all series and dates.
func (d *Dataset) ValueDomain() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, rec := range d.records {
		for _, name := range d.names {
			v := rec.Values[name]
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// Stats returns per-series summaries in header order.
func (d *Dataset) Stats() []Stats {
	stats := make([]Stats, 0, len(d.names))
	for _, s := range d.AllSeries() {
		st := Stats{Name: s.Name, Min: math.Inf(1), Max: math.Inf(-1)}
		sum := 0.0
		for _, p := range s.Values {
			st.Min = math.Min(st.Min, p.Value)
			st.Max = math.Max(st.Max, p.Value)
			sum += p.Value
		}
		st.Mean = sum / float64(len(s.Values))
		st.Last = s.Values[len(s.Values)-1].Value
		stats = append(stats, st)
	}
	return stats
}
