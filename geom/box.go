package geom

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pageviews/stat"
)

// Boxes draws one box and whisker plot per group at x positions 0, 1, ...
// labeled with the group names. Every group needs at least one value.
func Boxes(groups []string, values [][]float64, width vg.Length, labels Labels, style Style) (*plot.Plot, error) {
	if len(groups) == 0 {
		return nil, ErrNoData
	}
	if len(values) != len(groups) {
		return nil, fmt.Errorf("geom: %d value groups for %d labels", len(values), len(groups))
	}

	p := newPlot(labels, style)
	for i, g := range values {
		box, err := newBox(g, float64(i), width)
		if err != nil {
			return nil, fmt.Errorf("geom: box %s: %w", groups[i], err)
		}
		box.FillColor = style.Fill(i)
		p.Add(box)
	}

	p.NominalX(groups...)
	return p, nil
}

// newBox sets up a box plot at loc whose box, whiskers and outliers are
// those of stat.Summarize, not the quartiles gonum computes itself.
func newBox(values []float64, loc float64, width vg.Length) (*plotter.BoxPlot, error) {
	if len(values) == 0 {
		return nil, ErrNoData
	}
	sum, err := stat.Summarize(values, stat.DefaultWhisker)
	if err != nil {
		return nil, err
	}
	box, err := plotter.NewBoxPlot(width, loc, plotter.Values(values))
	if err != nil {
		return nil, err
	}

	box.Median = sum.Median
	box.Quartile1, box.Quartile3 = sum.Q1, sum.Q3
	box.AdjLow, box.AdjHigh = sum.LowWhisker, sum.HighWhisker
	box.Outside = box.Outside[:0]
	for i, v := range box.Values {
		if v < box.AdjLow || v > box.AdjHigh {
			box.Outside = append(box.Outside, i)
		}
	}
	return box, nil
}
