package pageviews

import (
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/vdobler/pageviews/geom"
	"github.com/vdobler/pageviews/stat"
)

// Default input and output files and the default cleaning band.
const (
	DefaultInput      = "fcc-forum-pageviews.csv"
	DefaultLineOutput = "line_plot.png"
	DefaultBarOutput  = "bar_plot.png"
	DefaultBoxOutput  = "box_plot.png"

	DefaultLowerQuantile = 0.025
	DefaultUpperQuantile = 0.975
)

// Titles and axis labels of the charts.
var (
	LineLabels = geom.Labels{
		Title: "Daily freeCodeCamp Forum Page Views 5/2016-12/2019",
		X:     "Date",
		Y:     "Page Views",
	}
	BarLabels = geom.Labels{
		Title: "Average Daily Page Views per Month",
		X:     "Years",
		Y:     "Average Page Views",
	}
	YearBoxLabels = geom.Labels{
		Title: "Year-wise Box Plot (Trend)",
		X:     "Year",
		Y:     "Page Views",
	}
	MonthBoxLabels = geom.Labels{
		Title: "Month-wise Box Plot (Seasonality)",
		X:     "Month",
		Y:     "Page Views",
	}
)

// BarLegendTitle heads the month legend of the bar chart.
const BarLegendTitle = "Months"

// Pipeline loads, cleans and draws a page-view series. The steps must run
// in the order Load, Clean and then any of the Draw methods; Run does all
// of them.
type Pipeline struct {
	// Input is the CSV file read by Load.
	Input string
	CSV   *CSVOptions

	// LowerQ and UpperQ are the quantiles bounding the values kept by
	// Clean, computed with Method.
	LowerQ, UpperQ float64
	Method         stat.Method

	// Files written by the Draw methods. Existing files are replaced.
	LineOutput, BarOutput, BoxOutput string

	Theme Theme
	Log   logrus.FieldLogger

	// Raw is the series read by Load, Cleaned the one kept by Clean
	// and Band the value range used for cleaning.
	Raw, Cleaned Series
	Band         stat.Band
}

// New returns a pipeline set up with the default files, band and theme.
// A nil log uses the logrus standard logger.
func New(log logrus.FieldLogger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		Input:      DefaultInput,
		CSV:        DefaultCSVOptions(),
		LowerQ:     DefaultLowerQuantile,
		UpperQ:     DefaultUpperQuantile,
		Method:     stat.Linear,
		LineOutput: DefaultLineOutput,
		BarOutput:  DefaultBarOutput,
		BoxOutput:  DefaultBoxOutput,
		Theme:      DefaultTheme,
		Log:        log,
	}
}

func (p *Pipeline) logger(module string) logrus.FieldLogger {
	if p.Log == nil {
		p.Log = logrus.StandardLogger()
	}
	return p.Log.WithField("module", module)
}

// Load reads p.Input into p.Raw.
func (p *Pipeline) Load() error {
	log := p.logger("loader")
	log.Infof("Reading %s", p.Input)
	s, err := LoadCSV(p.Input, p.CSV)
	if err != nil {
		return err
	}
	p.Raw = s
	log.WithFields(logrus.Fields{
		"first": s[0].Date.Format("2006-01-02"),
		"last":  s[len(s)-1].Date.Format("2006-01-02"),
	}).Infof("Loaded %s observations", humanize.Comma(int64(s.Len())))
	return nil
}

// Clean filters p.Raw into p.Cleaned.
func (p *Pipeline) Clean() error {
	log := p.logger("cleaner")
	if p.Raw == nil {
		return &Error{Op: "clean", Err: ErrNoData}
	}
	cleaned, band, err := Clean(p.Raw, p.LowerQ, p.UpperQ, p.Method)
	if err != nil {
		return err
	}
	p.Cleaned, p.Band = cleaned, band
	log.WithFields(logrus.Fields{
		"lower":  band.Lower,
		"upper":  band.Upper,
		"method": band.Method.String(),
	}).Infof("Kept %s of %s observations",
		humanize.Comma(int64(cleaned.Len())), humanize.Comma(int64(p.Raw.Len())))
	return nil
}

func (p *Pipeline) cleaned(op string) (Series, error) {
	if p.Cleaned == nil {
		return nil, &Error{Op: op, Err: ErrNoData}
	}
	return p.Cleaned, nil
}

// LinePlot builds the line chart of the cleaned series.
func (p *Pipeline) LinePlot() (*Figure, error) {
	s, err := p.cleaned("line plot")
	if err != nil {
		return nil, err
	}
	plt, err := geom.Line(s.Dates(), s.Values(), LineLabels, p.Theme.Style())
	if err != nil {
		return nil, &Error{Op: "line plot", Err: err}
	}
	return NewFigure(p.Theme.LineSize, p.Theme.DPI, plt), nil
}

// BarPlot builds the chart of monthly means, one cluster per year.
// Every cluster has a bar for each of the twelve months.
func (p *Pipeline) BarPlot() (*Figure, error) {
	s, err := p.cleaned("bar plot")
	if err != nil {
		return nil, err
	}
	means, err := s.MonthlyMeans()
	if err != nil {
		return nil, &Error{Op: "bar plot", Err: err}
	}

	plt, err := geom.Bars(p.monthClusters(means), BarLabels, p.Theme.Style())
	if err != nil {
		return nil, &Error{Op: "bar plot", Err: err}
	}
	return NewFigure(p.Theme.BarSize, p.Theme.DPI, plt), nil
}

// monthClusters lays out the bar chart: one cluster per year and one bar
// per calendar month, January first.
func (p *Pipeline) monthClusters(means MonthlyMeans) geom.Clusters {
	years := means.Years()
	return geom.Clusters{
		Groups:      YearLabels(NewIntSetFrom(years)),
		Series:      MonthNames(),
		Values:      means.Rows(),
		Width:       slotWidth(p.Theme.BarSize.Width, len(years), 0.8),
		LegendTitle: BarLegendTitle,
	}
}

// BoxPlot builds the two box plots side by side: values per year on the
// left and values per calendar month on the right.
func (p *Pipeline) BoxPlot() (*Figure, error) {
	log := p.logger("render")
	s, err := p.cleaned("box plot")
	if err != nil {
		return nil, err
	}
	byYear, err := s.YearGroups()
	if err != nil {
		return nil, &Error{Op: "box plot", Err: err}
	}
	byMonth, err := s.MonthGroups()
	if err != nil {
		return nil, &Error{Op: "box plot", Err: err}
	}
	for _, b := range append(append([]BoxGroup{}, byYear...), byMonth...) {
		log.WithFields(logrus.Fields{
			"group":    b.Label,
			"n":        b.Summary.N,
			"median":   b.Summary.Median,
			"outliers": len(b.Summary.Outliers),
		}).Debug("Box")
	}

	panel := p.Theme.BoxSize.Width / 2
	style := p.Theme.Style()
	left, err := geom.Boxes(boxLabels(byYear), boxValues(byYear),
		slotWidth(panel, len(byYear), 0.6), YearBoxLabels, style)
	if err != nil {
		return nil, &Error{Op: "box plot", Err: err}
	}
	right, err := geom.Boxes(boxLabels(byMonth), boxValues(byMonth),
		slotWidth(panel, len(byMonth), 0.6), MonthBoxLabels, style)
	if err != nil {
		return nil, &Error{Op: "box plot", Err: err}
	}
	return NewFigure(p.Theme.BoxSize, p.Theme.DPI, left, right), nil
}

func (p *Pipeline) save(f *Figure, filename string) error {
	if err := f.Save(filename); err != nil {
		return &Error{Op: "save", Err: err}
	}
	p.logger("render").WithField("file", filename).Info("Wrote chart")
	return nil
}

// DrawLinePlot builds the line chart and writes it to p.LineOutput.
func (p *Pipeline) DrawLinePlot() (*Figure, error) {
	f, err := p.LinePlot()
	if err != nil {
		return nil, err
	}
	return f, p.save(f, p.LineOutput)
}

// DrawBarPlot builds the bar chart and writes it to p.BarOutput.
func (p *Pipeline) DrawBarPlot() (*Figure, error) {
	f, err := p.BarPlot()
	if err != nil {
		return nil, err
	}
	return f, p.save(f, p.BarOutput)
}

// DrawBoxPlot builds the box plots and writes them to p.BoxOutput.
func (p *Pipeline) DrawBoxPlot() (*Figure, error) {
	f, err := p.BoxPlot()
	if err != nil {
		return nil, err
	}
	return f, p.save(f, p.BoxOutput)
}

// Run loads and cleans the input and draws all three charts. It stops
// at the first error.
func (p *Pipeline) Run() error {
	// Load and clean: the data every chart is drawn from.
	if err := p.Load(); err != nil {
		return err
	}
	if err := p.Clean(); err != nil {
		return err
	}

	// Each chart is an independent view of the cleaned series.
	for _, draw := range []func() (*Figure, error){
		p.DrawLinePlot,
		p.DrawBarPlot,
		p.DrawBoxPlot,
	} {
		if _, err := draw(); err != nil {
			return err
		}
	}
	return nil
}

// -------------------------------------------------------------------------
// Summary

// Summary collects the numbers behind the charts.
type Summary struct {
	Input        string
	Loaded, Kept int
	Band         stat.Band

	Means                 MonthlyMeans
	YearBoxes, MonthBoxes []BoxGroup
}

// Summary computes the summary of a cleaned pipeline.
func (p *Pipeline) Summary() (Summary, error) {
	s, err := p.cleaned("summary")
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{
		Input:  p.Input,
		Loaded: p.Raw.Len(),
		Kept:   s.Len(),
		Band:   p.Band,
	}
	if sum.Means, err = s.MonthlyMeans(); err != nil {
		return Summary{}, &Error{Op: "summary", Err: err}
	}
	if sum.YearBoxes, err = s.YearGroups(); err != nil {
		return Summary{}, &Error{Op: "summary", Err: err}
	}
	if sum.MonthBoxes, err = s.MonthGroups(); err != nil {
		return Summary{}, &Error{Op: "summary", Err: err}
	}
	return sum, nil
}
