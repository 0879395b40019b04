package pageviews

import (
	"strconv"
	"time"
)

// -------------------------------------------------------------------------
// Discrete scales
//
// The bar and box charts use nominal x axes. Their levels are calendar
// months and years which must appear in calendar order, not in the
// lexical order of their labels.

// MonthNames returns the full English month names January to December.
func MonthNames() []string {
	names := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		names[m-1] = m.String()
	}
	return names
}

// MonthAbbrev returns the three-letter abbreviation of m, e.g. "Jan".
func MonthAbbrev(m time.Month) string {
	return m.String()[:3]
}

// MonthLevels returns the months in set in calendar order. Values outside
// 1 to 12 are ignored.
func MonthLevels(set IntSet) []time.Month {
	var months []time.Month
	for _, m := range set.Elements() {
		if m < 1 || m > 12 {
			continue
		}
		months = append(months, time.Month(m))
	}
	return months
}

// MonthAbbrevs labels months with their abbreviations.
func MonthAbbrevs(months []time.Month) []string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = MonthAbbrev(m)
	}
	return labels
}

// YearLabels labels years in ascending order.
func YearLabels(set IntSet) []string {
	years := set.Elements()
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y)
	}
	return labels
}
