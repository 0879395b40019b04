package geom

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/pageviews/stat"
)

// render draws p onto a small in-memory canvas; gonum panics on
// inconsistent plots, so surviving this is the actual check.
func render(t *testing.T, p *plot.Plot) {
	t.Helper()
	img := vgimg.New(4*vg.Inch, 3*vg.Inch)
	p.Draw(draw.New(img))
}

func TestCommaTicks(t *testing.T) {
	ticks := CommaTicks{Ticker: plot.ConstantTicks{
		{Value: 12000, Label: "12000"},
		{Value: 2.5, Label: "2.5"},
		{Value: 500, Label: ""},
		{Value: 1234567, Label: "1.234567e+06"},
	}}.Ticks(0, 1)

	want := []string{"12,000", "2.5", "", "1,234,567"}
	for i, tick := range ticks {
		if tick.Label != want[i] {
			t.Errorf("Tick %d: got %q, want %q", i, tick.Label, want[i])
		}
	}

	if len(CommaTicks{}.Ticks(0, 20000)) == 0 {
		t.Errorf("No default ticks")
	}
}

func TestLine(t *testing.T) {
	start := time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{start, start.AddDate(0, 0, 1), start.AddDate(0, 0, 2)}
	values := []float64{1201, 2102, 1800}

	p, err := Line(dates, values,
		Labels{Title: "Daily", X: "Date", Y: "Page Views"},
		Style{Color: color.NRGBA{0xff, 0, 0, 0xff}, Width: vg.Points(1)})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if p.Title.Text != "Daily" || p.X.Label.Text != "Date" || p.Y.Label.Text != "Page Views" {
		t.Errorf("Bad labels %q %q %q", p.Title.Text, p.X.Label.Text, p.Y.Label.Text)
	}
	if _, ok := p.X.Tick.Marker.(plot.TimeTicks); !ok {
		t.Errorf("X axis has marker %T, want plot.TimeTicks", p.X.Tick.Marker)
	}
	if p.X.Min != float64(dates[0].Unix()) || p.X.Max != float64(dates[2].Unix()) {
		t.Errorf("X range %g..%g", p.X.Min, p.X.Max)
	}
	render(t, p)

	if _, err := Line(dates, values[:2], Labels{}, Style{}); err == nil {
		t.Errorf("Missing error for length mismatch")
	}
	if _, err := Line(nil, nil, Labels{}, Style{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Got %v, want ErrNoData", err)
	}
}

func TestBars(t *testing.T) {
	c := Clusters{
		Groups:      []string{"2016", "2017"},
		Series:      []string{"January", "February", "March"},
		Values:      [][]float64{{math.NaN(), math.NaN(), 10}, {5, 7, 9}},
		Width:       vg.Points(60),
		LegendTitle: "Months",
	}
	p, err := Bars(c, Labels{Title: "Average"}, Style{})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if p.Y.Min != 0 || p.Y.Max != 10 {
		t.Errorf("Y range %g..%g, want 0..10", p.Y.Min, p.Y.Max)
	}
	render(t, p)

	bad := []Clusters{
		{},
		{Groups: []string{"2016"}, Series: []string{"a"}, Values: nil, Width: 1},
		{Groups: []string{"2016"}, Series: []string{"a", "b"}, Values: [][]float64{{1}}, Width: 1},
		{Groups: []string{"2016"}, Series: []string{"a"}, Values: [][]float64{{1}}, Width: 0},
	}
	for i, b := range bad {
		if _, err := Bars(b, Labels{}, Style{}); err == nil {
			t.Errorf("%d: missing error", i)
		}
	}
}

func TestBoxes(t *testing.T) {
	groups := []string{"Jan", "Feb"}
	values := [][]float64{{1, 2, 3, 4, 50}, {3, 4, 5}}
	p, err := Boxes(groups, values, vg.Points(20), Labels{X: "Month"}, Style{})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if p.Y.Max < 50 {
		t.Errorf("Outlier not in y range: max %g", p.Y.Max)
	}
	render(t, p)

	if _, err := Boxes(groups, values[:1], vg.Points(20), Labels{}, Style{}); err == nil {
		t.Errorf("Missing error for length mismatch")
	}
	if _, err := Boxes(groups, [][]float64{{1}, {}}, vg.Points(20), Labels{}, Style{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Got %v, want ErrNoData", err)
	}
	if _, err := Boxes(nil, nil, vg.Points(20), Labels{}, Style{}); !errors.Is(err, ErrNoData) {
		t.Errorf("Got %v, want ErrNoData", err)
	}
}

func TestStyleFill(t *testing.T) {
	red, blue := color.NRGBA{0xff, 0, 0, 0xff}, color.NRGBA{0, 0, 0xff, 0xff}
	s := Style{Palette: []color.Color{red, blue}}
	if s.Fill(0) != red || s.Fill(1) != blue || s.Fill(2) != red {
		t.Errorf("Palette not cycled")
	}
	if (Style{}).Fill(3) == nil {
		t.Errorf("No default fill")
	}
}

func TestBarLayersGridFirst(t *testing.T) {
	c := Clusters{
		Groups: []string{"2016", "2017"},
		Series: []string{"January", "February"},
		Values: [][]float64{{1, 2}, {3, 4}},
		Width:  vg.Points(40),
	}
	layers, err := barLayers(c, Style{})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if len(layers) != 3 {
		t.Fatalf("Got %d layers, want 3", len(layers))
	}
	if _, ok := layers[0].(*plotter.Grid); !ok {
		t.Errorf("First layer is %T, want *plotter.Grid", layers[0])
	}
	for i, l := range layers[1:] {
		if _, ok := l.(*plotter.BarChart); !ok {
			t.Errorf("Layer %d is %T, want *plotter.BarChart", i+1, l)
		}
	}
}

func TestNewBoxMatchesSummary(t *testing.T) {
	// Linear quartiles here are 2.25 and 6.75; gonum's own empirical
	// quartiles would be 2 and 7.
	values := []float64{8, 1, 7, 2, 6, 3, 5, 4, 40, 0}
	box, err := newBox(values, 3, vg.Points(20))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	sum, err := stat.Summarize(values, stat.DefaultWhisker)
	if err != nil {
		t.Fatal(err)
	}

	if box.Quartile1 != sum.Q1 || box.Median != sum.Median || box.Quartile3 != sum.Q3 {
		t.Errorf("Box %g/%g/%g, summary %g/%g/%g",
			box.Quartile1, box.Median, box.Quartile3, sum.Q1, sum.Median, sum.Q3)
	}
	if box.AdjLow != sum.LowWhisker || box.AdjHigh != sum.HighWhisker {
		t.Errorf("Whiskers %g..%g, summary %g..%g",
			box.AdjLow, box.AdjHigh, sum.LowWhisker, sum.HighWhisker)
	}
	if len(box.Outside) != len(sum.Outliers) {
		t.Fatalf("Got %d outside, want %d", len(box.Outside), len(sum.Outliers))
	}
	if v := box.Values[box.Outside[0]]; v != 40 {
		t.Errorf("Outlier %g, want 40", v)
	}
	if box.Location != 3 {
		t.Errorf("Location %g", box.Location)
	}

	if _, err := newBox(nil, 0, vg.Points(20)); !errors.Is(err, ErrNoData) {
		t.Errorf("Got %v, want ErrNoData", err)
	}
}
