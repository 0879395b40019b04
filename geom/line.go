package geom

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// DateFormat is the tick label layout of time axes.
const DateFormat = "2006-01"

// Line plots values against dates, connected in the given order.
func Line(dates []time.Time, values []float64, labels Labels, style Style) (*plot.Plot, error) {
	if len(dates) != len(values) {
		return nil, fmt.Errorf("geom: %d dates for %d values", len(dates), len(values))
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	xys := make(plotter.XYs, len(values))
	for i := range values {
		xys[i].X = float64(dates[i].Unix())
		xys[i].Y = values[i]
	}

	p := newPlot(labels, style)
	p.X.Tick.Marker = plot.TimeTicks{Format: DateFormat}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	if style.Color != nil {
		line.LineStyle.Color = style.Color
	}
	if style.Width > 0 {
		line.LineStyle.Width = style.Width
	}

	p.Add(plotter.NewGrid(), line)
	return p, nil
}
