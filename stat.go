package pageviews

import (
	"math"
	"strconv"
	"time"

	"github.com/vdobler/pageviews/stat"
)

// YearMonth identifies one calendar month of one year.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return strconv.Itoa(ym.Year) + "-" + MonthAbbrev(ym.Month)
}

// -------------------------------------------------------------------------
// Monthly means

// MonthlyMeans maps a year to the mean value of each of its calendar
// months; index 0 is January. Months without observations are NaN.
type MonthlyMeans map[int][12]float64

// MonthlyMeans groups s by year and month and averages each group.
func (s Series) MonthlyMeans() (MonthlyMeans, error) {
	keys := make([]YearMonth, len(s))
	for i, o := range s {
		keys[i] = YearMonth{o.Date.Year(), o.Date.Month()}
	}
	means, err := stat.GroupMeans(keys, s.Values())
	if err != nil {
		return nil, err
	}

	mm := make(MonthlyMeans)
	for _, year := range s.Years().Elements() {
		var row [12]float64
		for i := range row {
			row[i] = math.NaN()
		}
		mm[year] = row
	}
	for k, mean := range means {
		row := mm[k.Year]
		row[k.Month-1] = mean
		mm[k.Year] = row
	}
	return mm, nil
}

// Years returns the years in mm in ascending order.
func (mm MonthlyMeans) Years() []int {
	return stat.SortedKeys(mm)
}

// Mean returns the mean of the given month and whether there was data.
func (mm MonthlyMeans) Mean(year int, month time.Month) (float64, bool) {
	row, ok := mm[year]
	if !ok || month < time.January || month > time.December {
		return math.NaN(), false
	}
	v := row[month-1]
	return v, !math.IsNaN(v)
}

// Rows returns one row of twelve means per year, years ascending.
func (mm MonthlyMeans) Rows() [][]float64 {
	years := mm.Years()
	rows := make([][]float64, len(years))
	for i, y := range years {
		row := mm[y]
		rows[i] = row[:]
	}
	return rows
}

// -------------------------------------------------------------------------
// Box groups

// BoxGroup is the data of one box in a box plot.
type BoxGroup struct {
	Label   string
	Values  []float64
	Summary stat.BoxSummary
}

// YearGroups partitions the values of s by year, years ascending.
func (s Series) YearGroups() ([]BoxGroup, error) {
	keys := make([]int, len(s))
	for i, o := range s {
		keys[i] = o.Date.Year()
	}
	groups, err := stat.Group(keys, s.Values())
	if err != nil {
		return nil, err
	}

	var boxes []BoxGroup
	for _, year := range stat.SortedKeys(groups) {
		b, err := newBoxGroup(strconv.Itoa(year), groups[year])
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

// MonthGroups partitions the values of s by calendar month regardless of
// the year. Groups are labeled with the month abbreviation and ordered by
// month number; months without data are left out.
func (s Series) MonthGroups() ([]BoxGroup, error) {
	keys := make([]time.Month, len(s))
	for i, o := range s {
		keys[i] = o.Date.Month()
	}
	groups, err := stat.Group(keys, s.Values())
	if err != nil {
		return nil, err
	}

	levels := MonthLevels(s.Months())
	labels := MonthAbbrevs(levels)
	var boxes []BoxGroup
	for i, m := range levels {
		b, err := newBoxGroup(labels[i], groups[m])
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

func newBoxGroup(label string, values []float64) (BoxGroup, error) {
	summary, err := stat.Summarize(values, stat.DefaultWhisker)
	if err != nil {
		return BoxGroup{}, err
	}
	return BoxGroup{Label: label, Values: values, Summary: summary}, nil
}

func boxLabels(boxes []BoxGroup) []string {
	labels := make([]string, len(boxes))
	for i, b := range boxes {
		labels[i] = b.Label
	}
	return labels
}

func boxValues(boxes []BoxGroup) [][]float64 {
	values := make([][]float64, len(boxes))
	for i, b := range boxes {
		values[i] = b.Values
	}
	return values
}
