package stat

import (
	mstats "github.com/montanaflynn/stats"
)

// DefaultWhisker is the Tukey whisker length in units of the IQR.
const DefaultWhisker = 1.5

// BoxSummary holds the components of a box and whisker plot.
type BoxSummary struct {
	N              int
	Min, Max       float64
	Q1, Median, Q3 float64
	LowWhisker     float64 // smallest value >= Q1 - coef*IQR
	HighWhisker    float64 // largest value <= Q3 + coef*IQR
	Outliers       []float64
}

// IQR is the interquartile range Q3-Q1.
func (b BoxSummary) IQR() float64 { return b.Q3 - b.Q1 }

// Summarize computes the box summary of d. Quartiles use linear
// interpolation. A coef <= 0 selects DefaultWhisker.
func Summarize(d []float64, coef float64) (BoxSummary, error) {
	if len(d) == 0 {
		return BoxSummary{}, ErrEmpty
	}
	if coef <= 0 {
		coef = DefaultWhisker
	}
	s := sorted(d)

	var b BoxSummary
	var err error
	b.N = len(s)
	b.Min, b.Max = s[0], s[len(s)-1]
	if b.Median, err = mstats.Median(s); err != nil {
		return BoxSummary{}, err
	}
	b.Q1, b.Q3 = linear(s, 0.25), linear(s, 0.75)

	iqr := b.IQR()
	lo, hi := b.Q1-coef*iqr, b.Q3+coef*iqr
	b.LowWhisker, b.HighWhisker = b.Max, b.Min
	for _, y := range s {
		if y >= lo && y < b.LowWhisker {
			b.LowWhisker = y
		}
		if y <= hi && y > b.HighWhisker {
			b.HighWhisker = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
		}
	}

	return b, nil
}
