package plotgen

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

// Margin sides, indices into PlotConfig.Margins.
const (
	Top = iota
	Right
	Bottom
	Left
)

// PlotConfig is the state shared by all elements of one plot.
type PlotConfig struct {
	ScaleX, ScaleY Scale

	// Margins around the plotting area, top, right, bottom, left.
	// Unset margins count as zero.
	Margins [4]measure.Measure

	// LayoutStack holds nested drawing regions; the top overrides the
	// margin derived clip.
	LayoutStack []vg.Rectangle

	// Background is set once a background has been drawn.
	Background *BackgroundStyle
}

// BackgroundStyle records how the plot background was painted.
type BackgroundStyle struct {
	Fill   color.Color
	Stroke draw.LineStyle
}

// NewPlotConfig returns a plot with two autoscaling linear scales.
func NewPlotConfig() *PlotConfig {
	return &PlotConfig{ScaleX: NewScale(), ScaleY: NewScale()}
}

// Clip returns the plotting area: the top of the layout stack or the
// layer minus the margins. Top and bottom percentages refer to the
// layer height, left and right to its width.
func (p *PlotConfig) Clip(l *Layer) vg.Rectangle {
	if n := len(p.LayoutStack); n > 0 {
		return p.LayoutStack[n-1]
	}
	return Inset(l.Rect(),
		l.Resolve(p.Margins[Top], l.Height),
		l.Resolve(p.Margins[Right], l.Width),
		l.Resolve(p.Margins[Bottom], l.Height),
		l.Resolve(p.Margins[Left], l.Width),
	)
}

// PushLayout makes r the drawing region until the matching PopLayout.
func (p *PlotConfig) PushLayout(r vg.Rectangle) {
	p.LayoutStack = append(p.LayoutStack, r)
}

// PopLayout restores the previous drawing region.
func (p *PlotConfig) PopLayout() {
	if n := len(p.LayoutStack); n > 0 {
		p.LayoutStack = p.LayoutStack[:n-1]
	}
}

// MarginBindings binds the margin keys of p. The margin key takes one
// measure for all sides or four in the order top, right, bottom, left.
func MarginBindings(p *PlotConfig) expr.Bindings {
	return expr.Bindings{
		{"margin", bindMargins(&p.Margins)},
		{"margin-top", BindMeasure(&p.Margins[Top])},
		{"margin-right", BindMeasure(&p.Margins[Right])},
		{"margin-bottom", BindMeasure(&p.Margins[Bottom])},
		{"margin-left", BindMeasure(&p.Margins[Left])},
	}
}

func bindMargins(dst *[4]measure.Measure) expr.Handler {
	return func(e *expr.Expr) error {
		var ms []measure.Measure
		if err := BindMeasures(&ms)(e); err != nil {
			return err
		}
		switch len(ms) {
		case 1:
			*dst = [4]measure.Measure{ms[0], ms[0], ms[0], ms[0]}
		case 4:
			copy(dst[:], ms)
		default:
			return fmt.Errorf("expected 1 or 4 measures, got %d", len(ms))
		}
		return nil
	}
}
