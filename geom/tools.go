package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

// base is embedded in every geometry configuration: a private copy of
// the plot scales which the limit-* and scale-* keys may override.
type base struct {
	scaleX, scaleY plotgen.Scale
}

func (b *base) seed(plot *plotgen.PlotConfig) {
	b.scaleX = plot.ScaleX.Clone()
	b.scaleY = plot.ScaleY.Clone()
}

func (b *base) bindings() expr.Bindings {
	return plotgen.ScaleBindings(&b.scaleX, &b.scaleY)
}

// direction of bars and areas.
type direction int

const (
	vertical direction = iota
	horizontal
)

var directions = map[string]direction{
	"vertical":   vertical,
	"horizontal": horizontal,
}

// cyclic returns xs[i mod len(xs)] or def if xs is empty.
func cyclic[T any](xs []T, i int, def T) T {
	if len(xs) == 0 {
		return def
	}
	return xs[i%len(xs)]
}

// checkLen reports a length mismatch between the buffers a and b.
// If optional is set an empty b is accepted.
func checkLen(element, aKey string, a data.Buffer, bKey string, b data.Buffer, optional bool) error {
	if optional && len(b) == 0 {
		return nil
	}
	if len(a) != len(b) {
		return plotgen.ConfigErrorf(element, bKey,
			"length mismatch: %s has %d values, %s has %d", aKey, len(a), bKey, len(b))
	}
	return nil
}

// fit fits s to all buffers. Empty buffers are no-ops.
func fit(s *plotgen.Scale, bufs ...data.Buffer) error {
	for _, b := range bufs {
		if err := s.Fit(b); err != nil {
			return err
		}
	}
	return nil
}

// project maps the fractions xs and ys into clip.
func project(clip vg.Rectangle, xs, ys []float64) []vg.Point {
	pts := make([]vg.Point, len(xs))
	for i := range xs {
		pts[i] = plotgen.Map(clip, xs[i], ys[i])
	}
	return pts
}

// colorBinding binds the common "color" key which sets stroke and fill.
func colorBinding(stroke *draw.LineStyle, fill *color.Color) expr.Handler {
	return expr.Each(plotgen.BindColor(&stroke.Color), plotgen.BindColor(fill))
}

// ----------------------------------------------------------------------------
// Labels

const defaultLabelPaddingEM = 0.6

// labelConfig is the label styling shared by several geometries.
type labelConfig struct {
	labels  []string
	sty     draw.TextStyle
	padding measure.Measure
}

func (lc *labelConfig) seed(l *plotgen.Layer) {
	lc.sty = l.TextStyle()
}

func (lc *labelConfig) bindings(l *plotgen.Layer) expr.Bindings {
	return expr.Bindings{
		{"labels", plotgen.BindStrings(&lc.labels)},
		{"label-font", plotgen.BindFont(&lc.sty.Font)},
		{"label-font-size", plotgen.BindFontSize(l, &lc.sty.Font.Size)},
		{"label-color", plotgen.BindColor(&lc.sty.Color)},
		{"label-padding", plotgen.BindMeasure(&lc.padding)},
	}
}

// pad returns the label padding in pixels. Em values refer to the label
// font size.
func (lc *labelConfig) pad(l *plotgen.Layer) vg.Length {
	m := lc.padding.Or(measure.FromEm(defaultLabelPaddingEM))
	if m.Unit == measure.Em {
		return vg.Length(m.Value) * lc.sty.Font.Size
	}
	return l.Resolve(m, 0)
}

// style returns the label style with the given alignment.
func (lc *labelConfig) style(xa draw.XAlignment, ya draw.YAlignment) draw.TextStyle {
	sty := lc.sty
	sty.XAlign, sty.YAlign = xa, ya
	return sty
}

// count returns the number of labels to draw for n data points.
func (lc *labelConfig) count(n int) int {
	if len(lc.labels) < n {
		return len(lc.labels)
	}
	return n
}

// walk runs a strict configuration walk and wraps failures for element.
func walk(element string, e *expr.Expr, tables ...expr.Bindings) error {
	return plotgen.WrapConfig(element, expr.WalkMap(e, plotgen.Concat(tables...), true))
}

