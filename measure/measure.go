// Package measure implements typed lengths which need a resolution context
// (DPI, font size or a reference span) before they can be turned into
// device pixels.
package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// PtPerInch is the number of typographic points in one inch.
const PtPerInch = 72.0

// Unit is the unit of a Measure.
type Unit int

const (
	// Unset is the unit of the zero Measure. A Measure with unit Unset
	// and a non-zero value is a plain (unitless) number of pixels.
	Unset Unit = iota
	Px
	Pt
	Em
	Rem
	Percent
)

var unitNames = []string{"", "px", "pt", "em", "rem", "%"}

// String returns the suffix used for u when formatting or parsing.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Measure is a length value tagged with its unit.
type Measure struct {
	Unit  Unit
	Value float64
}

func FromPx(v float64) Measure      { return Measure{Px, v} }
func FromPt(v float64) Measure      { return Measure{Pt, v} }
func FromEm(v float64) Measure      { return Measure{Em, v} }
func FromRem(v float64) Measure     { return Measure{Rem, v} }
func FromPercent(v float64) Measure { return Measure{Percent, v} }
func FromUnit(v float64) Measure    { return Measure{Unset, v} }

// IsUnset reports whether m is the zero Measure. Call sites replace unset
// measures with their documented default.
func (m Measure) IsUnset() bool {
	return m.Unit == Unset && m.Value == 0
}

// Or returns def if m is unset and m otherwise.
func (m Measure) Or(def Measure) Measure {
	if m.IsUnset() {
		return def
	}
	return m
}

// Resolve converts m into device pixels. Point values are scaled by
// dpi/72, em and rem values by fontSize (in pixels) and percentages are
// taken of span. Unitless values are already pixels.
func (m Measure) Resolve(dpi, fontSize, span float64) float64 {
	switch m.Unit {
	case Pt:
		return PtToPx(m.Value, dpi)
	case Em, Rem:
		return m.Value * fontSize
	case Percent:
		return m.Value / 100 * span
	default:
		return m.Value
	}
}

// Pixels is Resolve without a reference span; percentages resolve to 0.
func (m Measure) Pixels(dpi, fontSize float64) float64 {
	return m.Resolve(dpi, fontSize, 0)
}

func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64) + m.Unit.String()
}

// PtToPx converts pt typographic points into pixels at the given dpi.
func PtToPx(pt, dpi float64) float64 {
	return pt * dpi / PtPerInch
}

// Parse reads a measure like "10pt", "1.5em", "2rem", "50%", "12px" or a
// bare number.
func Parse(s string) (Measure, error) {
	s = strings.TrimSpace(s)
	for _, u := range []Unit{Rem, Em, Px, Pt, Percent} {
		suffix := u.String()
		if !strings.HasSuffix(s, suffix) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, suffix)), 64)
		if err != nil {
			return Measure{}, fmt.Errorf("invalid measure %q", s)
		}
		return Measure{u, v}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Measure{}, fmt.Errorf("invalid measure %q", s)
	}
	return Measure{Unset, v}, nil
}
