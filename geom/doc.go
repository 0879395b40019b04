// Package geom builds the gonum plots for the page-view charts: a line
// over time, dodged bar clusters and box plots over nominal groups.
//
// Builders only construct *plot.Plot values; drawing them onto an image
// and saving it is left to the caller.
package geom
