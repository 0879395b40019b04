package pageviews

import (
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pageviews/geom"
)

// FigureSize is the size of a rendered chart.
type FigureSize struct {
	Width, Height vg.Length
}

// Theme collects the fixed aesthetics of all charts.
type Theme struct {
	LineColor color.Color
	LineWidth vg.Length
	Palette   []color.Color // one fill per month or box, cycled
	FillAlpha float64       // opacity of bar and box fills
	TitleSize vg.Length

	// DPI is the resolution of the PNG output.
	DPI int

	LineSize, BarSize, BoxSize FigureSize
}

var DefaultTheme = Theme{
	LineColor: BuiltinColors["red"],
	LineWidth: vg.Points(1),
	Palette:   mustPalette(Tab10),
	FillAlpha: 0.85,
	TitleSize: vg.Points(14),
	DPI:       100,
	LineSize:  FigureSize{12 * vg.Inch, 6 * vg.Inch},
	BarSize:   FigureSize{12 * vg.Inch, 8 * vg.Inch},
	BoxSize:   FigureSize{15 * vg.Inch, 6 * vg.Inch},
}

func mustPalette(colors []string) []color.Color {
	p, err := ParsePalette(colors)
	if err != nil {
		panic(err)
	}
	return p
}

// Style converts the theme into the style understood by the geoms.
func (t Theme) Style() geom.Style {
	fills := make([]color.Color, len(t.Palette))
	for i, c := range t.Palette {
		fills[i] = SetAlpha(c, t.FillAlpha)
	}
	return geom.Style{
		Color:     t.LineColor,
		Width:     t.LineWidth,
		Palette:   fills,
		TitleSize: t.TitleSize,
	}
}

// plotShare is the part of a figure's width roughly available to the
// data area once axes, labels and padding are drawn.
const plotShare = 0.85

// slotWidth divides the data area of a panel of the given width into n
// slots and returns the width of one slot times fill.
func slotWidth(panel vg.Length, n int, fill float64) vg.Length {
	if n < 1 {
		n = 1
	}
	return vg.Length(plotShare*fill) * panel / vg.Length(n)
}
