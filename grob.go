package pageviews

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a rectangular grid of panels drawn onto one image.
type Figure struct {
	Panels        [][]*plot.Plot
	Width, Height vg.Length
	DPI           int
}

// NewFigure sets up a single-row figure with the given panels.
func NewFigure(size FigureSize, dpi int, panels ...*plot.Plot) *Figure {
	return &Figure{
		Panels: [][]*plot.Plot{panels},
		Width:  size.Width,
		Height: size.Height,
		DPI:    dpi,
	}
}

// Rows and Cols report the dimension of the panel grid.
func (f *Figure) Rows() int { return len(f.Panels) }
func (f *Figure) Cols() int {
	if len(f.Panels) == 0 {
		return 0
	}
	return len(f.Panels[0])
}

func (f *Figure) check() error {
	if f.Rows() == 0 || f.Cols() == 0 {
		return fmt.Errorf("pageviews: figure without panels")
	}
	for _, row := range f.Panels {
		if len(row) != f.Cols() {
			return fmt.Errorf("pageviews: figure panels are not a grid")
		}
		for _, p := range row {
			if p == nil {
				return fmt.Errorf("pageviews: figure has a nil panel")
			}
		}
	}
	return nil
}

// Image draws all panels onto a new image canvas.
func (f *Figure) Image() (*vgimg.Canvas, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	dpi := f.DPI
	if dpi <= 0 {
		dpi = vgimg.DefaultDPI
	}
	img := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	if f.Rows() == 1 && f.Cols() == 1 {
		f.Panels[0][0].Draw(dc)
		return img, nil
	}

	tiles := draw.Tiles{
		Rows:      f.Rows(),
		Cols:      f.Cols(),
		PadX:      vg.Millimeter * 8,
		PadY:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for r, row := range f.Panels {
		for c, p := range row {
			p.Draw(canvases[r][c])
		}
	}
	return img, nil
}

// WriteTo writes f as PNG to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	img, err := f.Image()
	if err != nil {
		return 0, err
	}
	return vgimg.PngCanvas{Canvas: img}.WriteTo(w)
}

// Save writes f as PNG to the named file, replacing an existing file.
func (f *Figure) Save(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteTo(file)
	return err
}
