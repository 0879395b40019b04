// Package stat provides the statistical transforms used to clean and
// summarize a page-view series: quantiles and percentile bands, grouped
// means and box-and-whisker summaries.
//
// All functions take plain float64 slices and never modify their input.
package stat
