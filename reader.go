package plotgen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

// ----------------------------------------------------------------------------
// Handlers for the configuration walk. All of them store into the passed
// destination only on success.

// BindBuffer reads a list of values (or a single value) into dst.
func BindBuffer(dst *data.Buffer) expr.Handler {
	return func(e *expr.Expr) error {
		var b data.Buffer
		for _, it := range e.Items() {
			if !it.IsValue() {
				return fmt.Errorf("expected a value, got %s", it.String())
			}
			b = append(b, data.Parse(it.String()))
		}
		*dst = b
		return nil
	}
}

// BindStrings reads a list of labels.
func BindStrings(dst *[]string) expr.Handler {
	return expr.Strings(dst)
}

// BindMeasure reads a single measure like "10pt" or "2em".
func BindMeasure(dst *measure.Measure) expr.Handler {
	return func(e *expr.Expr) error {
		if !e.IsValue() {
			return fmt.Errorf("expected a measure, got %s", e.String())
		}
		m, err := measure.Parse(e.String())
		if err != nil {
			return err
		}
		*dst = m
		return nil
	}
}

// BindMeasures reads a list of measures.
func BindMeasures(dst *[]measure.Measure) expr.Handler {
	return func(e *expr.Expr) error {
		var ms []measure.Measure
		for _, it := range e.Items() {
			var m measure.Measure
			if err := BindMeasure(&m)(it); err != nil {
				return err
			}
			ms = append(ms, m)
		}
		*dst = ms
		return nil
	}
}

// BindSize reads a measure and resolves it to pixels against l.
// Percentages refer to the layer width. Sizes whose percentages refer to
// a region only known while drawing are kept as measure.Measure and
// resolved with Layer.Resolve.
func BindSize(l *Layer, dst *vg.Length) expr.Handler {
	return func(e *expr.Expr) error {
		var m measure.Measure
		if err := BindMeasure(&m)(e); err != nil {
			return err
		}
		*dst = l.Resolve(m, l.Width)
		return nil
	}
}

// BindFontSize reads a font size; plain numbers are points and
// percentages refer to the layer font size.
func BindFontSize(l *Layer, dst *vg.Length) expr.Handler {
	return func(e *expr.Expr) error {
		var m measure.Measure
		if err := BindMeasure(&m)(e); err != nil {
			return err
		}
		if m.Unit == measure.Unset {
			m.Unit = measure.Pt
		}
		*dst = l.Resolve(m, l.FontSize)
		return nil
	}
}

// BindFont switches dst to the named font family, e.g. "Times-Roman".
// The size of dst is kept.
func BindFont(dst *vg.Font) expr.Handler {
	return func(e *expr.Expr) error {
		var name string
		if err := expr.String(&name)(e); err != nil {
			return err
		}
		return dst.SetName(name)
	}
}

// BindColor reads a single colour, see ReadColor.
func BindColor(dst *color.Color) expr.Handler {
	return func(e *expr.Expr) error {
		if !e.IsValue() {
			return fmt.Errorf("expected a color, got %s", e.String())
		}
		c, err := ReadColor(e.String())
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
}

// BindColors reads a list of colours.
func BindColors(dst *[]color.Color) expr.Handler {
	return func(e *expr.Expr) error {
		var cs []color.Color
		for _, it := range e.Items() {
			var c color.Color
			if err := BindColor(&c)(it); err != nil {
				return err
			}
			cs = append(cs, c)
		}
		*dst = cs
		return nil
	}
}

// BindFill reads a fill colour or "none" which clears dst.
func BindFill(dst *color.Color) expr.Handler {
	return func(e *expr.Expr) error {
		if e.IsValue() && strings.EqualFold(e.String(), "none") {
			*dst = nil
			return nil
		}
		return BindColor(dst)(e)
	}
}

// BindStrokeStyle reads one of solid, dashed, dotted or none.
func BindStrokeStyle(l *Layer, dst *draw.LineStyle) expr.Handler {
	return func(e *expr.Expr) error {
		switch strings.ToLower(e.String()) {
		case "solid":
			dst.Dashes = nil
		case "dashed":
			dst.Dashes = dashes(l, DashedPattern)
		case "dotted":
			dst.Dashes = dashes(l, DottedPattern)
		case "none":
			dst.Width = 0
		default:
			return &expr.EnumError{Value: e.String(),
				Choices: []string{"dashed", "dotted", "none", "solid"}}
		}
		return nil
	}
}

func dashes(l *Layer, pattern []float64) []vg.Length {
	d := make([]vg.Length, len(pattern))
	for i, pt := range pattern {
		d[i] = l.Pt(pt)
	}
	return d
}

// StrokeBindings returns the stroke-color, stroke-width and stroke-style
// keys for s.
func StrokeBindings(l *Layer, s *draw.LineStyle) expr.Bindings {
	return expr.Bindings{
		{"stroke-color", BindColor(&s.Color)},
		{"stroke-width", BindSize(l, &s.Width)},
		{"stroke-style", BindStrokeStyle(l, s)},
	}
}

// ReadColor parses an SVG colour name, "transparent", #rgb, #rrggbb or
// #rrggbbaa.
func ReadColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBAModel.Convert(c), nil
	}

	alpha := uint8(0xff)
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		alpha, s = uint8(a), s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{r, g, b, alpha}, nil
}

// ----------------------------------------------------------------------------
// Scale configuration

var scaleKinds = map[string]ScaleKind{
	"linear":      Linear,
	"categorical": Categorical,
	"log":         Logarithmic,
	"logarithmic": Logarithmic,
	"time":        Time,
}

// BindScaleKind reads a scale kind. A logarithmic scale may name its
// base: (log 2).
func BindScaleKind(s *Scale) expr.Handler {
	return func(e *expr.Expr) error {
		items := e.Items()
		if len(items) == 0 || len(items) > 2 {
			return fmt.Errorf("invalid scale %s", e.String())
		}
		var kind ScaleKind
		if err := expr.Enum(&kind, scaleKinds)(items[0]); err != nil {
			return err
		}
		base := 0.0
		if len(items) == 2 {
			if kind != Logarithmic {
				return fmt.Errorf("only logarithmic scales take a base")
			}
			if err := expr.Float64(&base)(items[1]); err != nil {
				return err
			}
			if base <= 1 {
				return fmt.Errorf("invalid logarithm base %g", base)
			}
		}
		s.Kind, s.Base = kind, base
		return nil
	}
}

// ScaleBindings returns the limit and scale keys for the x and y scale.
func ScaleBindings(x, y *Scale) expr.Bindings {
	return expr.Bindings{
		{"limit-x", expr.OptFloat64Pair(&x.Min, &x.Max)},
		{"limit-x-min", expr.OptFloat64(&x.Min)},
		{"limit-x-max", expr.OptFloat64(&x.Max)},
		{"limit-y", expr.OptFloat64Pair(&y.Min, &y.Max)},
		{"limit-y-min", expr.OptFloat64(&y.Min)},
		{"limit-y-max", expr.OptFloat64(&y.Max)},
		{"scale-x", BindScaleKind(x)},
		{"scale-y", BindScaleKind(y)},
		{"scale-x-padding", expr.Float64(&x.Padding)},
		{"scale-y-padding", expr.Float64(&y.Padding)},
	}
}

// Concat joins binding tables.
func Concat(tables ...expr.Bindings) expr.Bindings {
	var all expr.Bindings
	for _, t := range tables {
		all = append(all, t...)
	}
	return all
}
