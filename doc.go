// Package pageviews cleans a daily page-view series and draws descriptive
// charts of it in the style of a small exploratory analysis.
//
// # Data Representation
//
// A series is a slice of observations, one per calendar day:
//
//	type Observation struct {
//		Date  time.Time
//		Value int
//	}
//
// Series are loaded from CSV files with a header row naming a date and a
// value column (see ReadCSV) and are kept sorted by date.
//
// # Cleaning
//
// Clean drops every observation whose value lies outside a percentile
// band of the full series, by default the band between the 2.5th and the
// 97.5th percentile. The band is computed once on the unfiltered data.
//
// # Charts
//
// Three charts are drawn from a cleaned series:
//
//	line   value against date
//	bar    mean value per month, one cluster of twelve bars per year
//	box    distribution per year (trend) and per month (seasonality)
//
// The views are computed by MonthlyMeans, YearGroups and MonthGroups and
// rendered with the builders in package geom. A Pipeline runs all steps
// and writes the charts as PNG files.
package pageviews
