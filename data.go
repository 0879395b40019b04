package pageviews

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vdobler/pageviews/stat"
)

// Observation is the page-view count of one day.
type Observation struct {
	Date  time.Time
	Value int
}

// Series is a sequence of observations ordered by date.
type Series []Observation

// Len returns the number of observations in s.
func (s Series) Len() int { return len(s) }

// Values returns the page-view counts of s as float64.
func (s Series) Values() []float64 {
	v := make([]float64, len(s))
	for i, o := range s {
		v[i] = float64(o.Value)
	}
	return v
}

// Dates returns the dates of s.
func (s Series) Dates() []time.Time {
	d := make([]time.Time, len(s))
	for i, o := range s {
		d[i] = o.Date
	}
	return d
}

// Filter extracts all observations from s for which keep returns true.
// The result does not share memory with s.
func (s Series) Filter(keep func(Observation) bool) Series {
	result := make(Series, 0, len(s))
	for _, o := range s {
		if keep(o) {
			result = append(result, o)
		}
	}
	return result
}

// Years returns the set of years present in s.
func (s Series) Years() IntSet {
	years := NewIntSet()
	for _, o := range s {
		years.Add(o.Date.Year())
	}
	return years
}

// Months returns the set of calendar months (1 to 12) present in s.
func (s Series) Months() IntSet {
	months := NewIntSet()
	for _, o := range s {
		months.Add(int(o.Date.Month()))
	}
	return months
}

// -------------------------------------------------------------------------
// CSV loading

// CSVOptions controls how ReadCSV interprets its input.
type CSVOptions struct {
	DateColumn  string // header of the date column (default "date")
	ValueColumn string // header of the value column (default "value")
	DateFormat  string // layout for time.Parse (default "2006-01-02")
	Delimiter   rune   // field delimiter (default ',')
}

// DefaultCSVOptions returns the options matching the page-view export.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateColumn:  "date",
		ValueColumn: "value",
		DateFormat:  "2006-01-02",
		Delimiter:   ',',
	}
}

// LoadCSV loads a series from the named CSV file.
func LoadCSV(filename string, opts *CSVOptions) (Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &Error{Op: "load", Err: err}
	}
	defer file.Close()

	return ReadCSV(file, opts)
}

// ReadCSV reads a series from r. The first record must be a header naming
// the date and value columns. Every following record must hold a valid
// date and a non-negative integer value; the first bad record aborts the
// read. The returned series is sorted by date and dates are unique.
func ReadCSV(r io.Reader, opts *CSVOptions) (Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &Error{Op: "read header", Err: ErrNoData}
	} else if err != nil {
		return nil, &Error{Op: "read header", Err: err}
	}

	dateIdx, valueIdx := -1, -1
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch h {
		case opts.DateColumn:
			dateIdx = i
		case opts.ValueColumn:
			valueIdx = i
		}
	}
	if dateIdx == -1 {
		return nil, &Error{Op: "read header", Err: fmt.Errorf("%w %q", ErrMissingColumn, opts.DateColumn)}
	}
	if valueIdx == -1 {
		return nil, &Error{Op: "read header", Err: fmt.Errorf("%w %q", ErrMissingColumn, opts.ValueColumn)}
	}

	var series Series
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Op: "read", Err: err}
		}
		line, _ := reader.FieldPos(0)

		dateStr := strings.TrimSpace(record[dateIdx])
		date, err := time.Parse(opts.DateFormat, dateStr)
		if err != nil {
			return nil, &Error{Op: "parse date", Line: line,
				Err: fmt.Errorf("%w: bad date %q", ErrMalformedRow, dateStr)}
		}

		valStr := strings.TrimSpace(record[valueIdx])
		val, err := strconv.Atoi(valStr)
		if err != nil || val < 0 {
			return nil, &Error{Op: "parse value", Line: line,
				Err: fmt.Errorf("%w: bad value %q", ErrMalformedRow, valStr)}
		}

		series = append(series, Observation{Date: date, Value: val})
	}

	if len(series) == 0 {
		return nil, &Error{Op: "read", Err: ErrNoData}
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	for i := 1; i < len(series); i++ {
		if series[i].Date.Equal(series[i-1].Date) {
			return nil, &Error{Op: "read",
				Err: fmt.Errorf("%w %s", ErrDuplicateDate, series[i].Date.Format("2006-01-02"))}
		}
	}

	return series, nil
}

// -------------------------------------------------------------------------
// Cleaning

// Clean drops all observations of s whose value lies outside the band
// between the lower- and upper-quantile of all values of s. Quantiles are
// given as fractions, e.g. 0.025 and 0.975.
func Clean(s Series, lower, upper float64, method stat.Method) (Series, stat.Band, error) {
	if len(s) == 0 {
		return nil, stat.Band{}, &Error{Op: "clean", Err: ErrNoData}
	}
	band, err := stat.NewBand(s.Values(), lower, upper, method)
	if err != nil {
		return nil, stat.Band{}, &Error{Op: "clean", Err: err}
	}

	kept := s.Filter(func(o Observation) bool {
		return band.Contains(float64(o.Value))
	})
	if len(kept) == 0 {
		return nil, band, &Error{Op: "clean", Err: ErrNoData}
	}
	return kept, band, nil
}
