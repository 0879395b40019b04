package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Clusters describes a dodged bar chart: one cluster per group along the
// x axis and one bar per series inside each cluster.
type Clusters struct {
	Groups []string // x axis labels
	Series []string // legend entries, in drawing order

	// Values[i][j] is the height of series j in group i. NaN is drawn as
	// a bar of height zero.
	Values [][]float64

	// Width is the width of one whole cluster.
	Width vg.Length

	// LegendTitle is shown above the legend entries if not empty.
	LegendTitle string
}

// Bars draws c as a dodged bar chart.
//
//	     +------------------ Width ------------------+
//	n=4  |----------|----------|----------|----------|
//	     +-------- wh --------+X
func Bars(c Clusters, labels Labels, style Style) (*plot.Plot, error) {
	n, m := len(c.Groups), len(c.Series)
	if n == 0 || m == 0 {
		return nil, ErrNoData
	}
	if len(c.Values) != n {
		return nil, fmt.Errorf("geom: %d value rows for %d groups", len(c.Values), n)
	}
	for i, row := range c.Values {
		if len(row) != m {
			return nil, fmt.Errorf("geom: group %s has %d values for %d series",
				c.Groups[i], len(row), m)
		}
	}
	if c.Width <= 0 {
		return nil, fmt.Errorf("geom: bad cluster width %v", c.Width)
	}

	layers, err := barLayers(c, style)
	if err != nil {
		return nil, err
	}

	p := newPlot(labels, style)
	p.Add(layers...)
	p.Legend.Top = true
	p.Legend.Left = true
	if c.LegendTitle != "" {
		p.Legend.Add(c.LegendTitle)
	}
	for j, name := range c.Series {
		p.Legend.Add(name, layers[j+1].(*plotter.BarChart))
	}

	p.NominalX(c.Groups...)
	return p, nil
}

// barLayers returns the plotters of c in drawing order: the grid first so
// it stays behind the bars, then one bar chart per series.
func barLayers(c Clusters, style Style) ([]plot.Plotter, error) {
	n, m := len(c.Groups), len(c.Series)
	layers := []plot.Plotter{plotter.NewGrid()}

	wh := c.Width / 2
	we := c.Width / vg.Length(m)
	for j := range c.Series {
		heights := make(plotter.Values, n)
		for i := range c.Groups {
			if v := c.Values[i][j]; !math.IsNaN(v) {
				heights[i] = v
			}
		}
		bars, err := plotter.NewBarChart(heights, we)
		if err != nil {
			return nil, err
		}
		bars.Color = style.Fill(j)
		bars.LineStyle.Width = 0
		bars.Offset = -wh + (vg.Length(j)+0.5)*we
		layers = append(layers, bars)
	}
	return layers, nil
}
