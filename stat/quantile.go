package stat

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	mstats "github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
)

var (
	// ErrEmpty is returned if a statistic is requested for no data.
	ErrEmpty = errors.New("stat: empty input")

	// ErrBadQuantile is returned for quantiles outside [0,1] or
	// inverted bands.
	ErrBadQuantile = errors.New("stat: bad quantile")
)

// Method selects how a quantile falls between two data points.
type Method int

const (
	// Linear interpolates between the closest ranks: h = (n-1)p.
	// This is what numpy and pandas do by default.
	Linear Method = iota

	// NearestRank returns the smallest value whose rank covers p.
	NearestRank

	// Empirical uses the inverse of the empirical CDF.
	Empirical
)

var methodNames = map[Method]string{
	Linear:      "linear",
	NearestRank: "nearest-rank",
	Empirical:   "empirical",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod is the inverse of Method.String. Matching ignores case.
func ParseMethod(s string) (Method, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == s {
			return m, nil
		}
	}
	return Linear, fmt.Errorf("stat: unknown quantile method %q", s)
}

// Quantile computes the p-quantile of xs with method m.
func Quantile(xs []float64, p float64, m Method) (float64, error) {
	if len(xs) == 0 {
		return math.NaN(), ErrEmpty
	}
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN(), fmt.Errorf("%w: %g", ErrBadQuantile, p)
	}

	switch m {
	case NearestRank:
		if p == 0 {
			return mstats.Min(xs)
		}
		return mstats.PercentileNearestRank(xs, percent(p))
	case Empirical:
		return gstat.Quantile(p, gstat.Empirical, sorted(xs), nil), nil
	case Linear:
		return linear(sorted(xs), p), nil
	}
	return math.NaN(), fmt.Errorf("stat: unknown quantile method %d", int(m))
}

// percent converts the fraction p to a percentage, rounded to 9 decimals
// so that e.g. 0.07 gives exactly 7 and not 7.000000000000001.
func percent(p float64) float64 {
	return math.Round(p*100*1e9) / 1e9
}

// linear expects s to be sorted and non-empty.
func linear(s []float64, p float64) float64 {
	h := float64(len(s)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(s) {
		return s[len(s)-1]
	}
	return s[i] + (h-lo)*(s[i+1]-s[i])
}

func sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	return s
}

// Band is a closed value range [Lower, Upper] derived from the quantiles
// LowerQ and UpperQ of some data.
type Band struct {
	LowerQ, UpperQ float64
	Lower, Upper   float64
	Method         Method
}

// NewBand computes the band between the lo- and hi-quantile of xs.
func NewBand(xs []float64, lo, hi float64, m Method) (Band, error) {
	if lo > hi {
		return Band{}, fmt.Errorf("%w: lower %g above upper %g", ErrBadQuantile, lo, hi)
	}
	lower, err := Quantile(xs, lo, m)
	if err != nil {
		return Band{}, err
	}
	upper, err := Quantile(xs, hi, m)
	if err != nil {
		return Band{}, err
	}
	return Band{LowerQ: lo, UpperQ: hi, Lower: lower, Upper: upper, Method: m}, nil
}

// Contains reports whether x lies inside b, bounds included.
func (b Band) Contains(x float64) bool {
	return x >= b.Lower && x <= b.Upper
}

func (b Band) String() string {
	return fmt.Sprintf("[%g, %g] (q%g..q%g, %s)", b.Lower, b.Upper, b.LowerQ, b.UpperQ, b.Method)
}
