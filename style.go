package pageviews

import (
	"fmt"
	"image/color"
	"strings"
)

// SetAlpha sets the alpha of c to a, a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xbf, 0xbf, 0xff},
	"magenta": {0xbf, 0x00, 0xbf, 0xff},
	"yellow":  {0xbf, 0xbf, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// Single letter color codes.
var shortColors = map[string]string{
	"r": "red",
	"g": "green",
	"b": "blue",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// Tab10 is a qualitative palette of ten colors followed by two extra
// colors so that each month gets its own color.
var Tab10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	"#393b79", "#637939",
}

// ParseColor converts s to a color. Recognized are "#rrggbb" and
// "#rrggbbaa" hex colors, the names in BuiltinColors and the single
// letter codes r, g, b, c, m, y, k and w.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var r, g, b, a uint8
		a = 0xff
		n, err := fmt.Sscanf(s[1:7], "%2x%2x%2x", &r, &g, &b)
		if err != nil || n != 3 {
			return nil, fmt.Errorf("bad hex color %q", s)
		}
		if len(s) == 9 {
			if _, err := fmt.Sscanf(s[7:9], "%2x", &a); err != nil {
				return nil, fmt.Errorf("bad alpha in color %q", s)
			}
		}
		return color.NRGBA{r, g, b, a}, nil
	}
	if long, ok := shortColors[s]; ok {
		s = long
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// ParsePalette parses each of the given colors.
func ParsePalette(colors []string) ([]color.Color, error) {
	palette := make([]color.Color, len(colors))
	for i, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		palette[i] = c
	}
	return palette, nil
}
