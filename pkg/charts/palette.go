// Package charts renders the report charts (bar, box, histogram, line and
// tiled report pages) from pre-computed statistics.
package charts

import (
	"image/color"
	"strconv"
)

// DefaultPalette is the category palette shared by all charts.
var DefaultPalette = []color.Color{
	HexColor("#1f77b4"),
	HexColor("#ff7f0e"),
	HexColor("#2ca02c"),
	HexColor("#d62728"),
	HexColor("#9467bd"),
	HexColor("#8c564b"),
	HexColor("#e377c2"),
	HexColor("#7f7f7f"),
	HexColor("#bcbd22"),
	HexColor("#17becf"),
}

// HexColor parses a "#rrggbb" string. Invalid input returns opaque black.
func HexColor(hex string) color.RGBA {
	c := color.RGBA{A: 0xff}

	if len(hex) != 7 || hex[0] != '#' {
		return c
	}

	if value, err := strconv.ParseUint(hex[1:], 16, 32); err == nil {
		c.R = uint8(value >> 16)
		c.G = uint8(value >> 8)
		c.B = uint8(value)
	}

	return c
}

// WithAlpha returns c at the given opacity, for layered fills.
func WithAlpha(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()

	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: alpha,
	}
}

// AlternatingPeriodColor colors fiscal period ticks by quarter parity:
// even quarters take the first color, odd quarters the second. The period
// format is <year>Q<quarter>, e.g. "2024Q3".
func AlternatingPeriodColor(period string, colors [2]color.Color) color.Color {
	if len(period) == 0 {
		return colors[1]
	}

	quarter := int(period[len(period)-1] - '0')
	if quarter%2 == 0 {
		return colors[0]
	}

	return colors[1]
}
