package plotgen

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultFont is the font family used when no font is configured.
const DefaultFont = "Helvetica"

// Dash patterns for stroke-style, in points.
var (
	DashedPattern = []float64{4, 2}
	DottedPattern = []float64{1, 2}
)

// Stroked reports whether drawing with s leaves a mark.
func Stroked(s draw.LineStyle) bool {
	return s.Width > 0 && s.Color != nil
}

// MakeFont returns the font family at size pixels. The canvas converts
// the size to points when drawing.
func MakeFont(family string, size vg.Length) (vg.Font, error) {
	if family == "" {
		family = DefaultFont
	}
	return vg.MakeFont(family, size)
}
