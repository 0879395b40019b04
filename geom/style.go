package geom

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned by builders which got nothing to draw.
var ErrNoData = errors.New("geom: no data")

// Labels are the title and axis labels of a chart.
type Labels struct {
	Title string
	X, Y  string
}

// Style holds the fixed aesthetics of a chart.
type Style struct {
	Color     color.Color   // line color
	Width     vg.Length     // line width
	Palette   []color.Color // fill colors of bars and boxes, cycled
	TitleSize vg.Length     // 0 keeps the plot default
}

// Fill returns the i'th fill color.
func (s Style) Fill(i int) color.Color {
	if len(s.Palette) == 0 {
		return plotutil.Color(i)
	}
	return s.Palette[i%len(s.Palette)]
}

func newPlot(l Labels, s Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = l.Title
	if s.TitleSize > 0 {
		p.Title.TextStyle.Font.Size = s.TitleSize
	}
	p.X.Label.Text = l.X
	p.Y.Label.Text = l.Y
	p.Y.Tick.Marker = CommaTicks{}
	return p
}
