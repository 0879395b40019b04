package geom

import (
	"math"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

// CommaTicks labels integral major ticks with thousands separators, e.g.
// "12,000" instead of "12000". Ticks come from Ticker or, if nil, from
// plot.DefaultTicks.
type CommaTicks struct {
	Ticker plot.Ticker
}

var _ plot.Ticker = CommaTicks{}

func (t CommaTicks) Ticks(min, max float64) []plot.Tick {
	ticker := t.Ticker
	if ticker == nil {
		ticker = plot.DefaultTicks{}
	}
	ticks := ticker.Ticks(min, max)
	for i, tick := range ticks {
		if tick.Label == "" || tick.Value != math.Trunc(tick.Value) {
			continue
		}
		ticks[i].Label = humanize.Comma(int64(tick.Value))
	}
	return ticks
}
