package guide

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

type corner int

const (
	topRight corner = iota
	topLeft
	bottomRight
	bottomLeft
)

var corners = map[string]corner{
	"top-right":    topRight,
	"top-left":     topLeft,
	"bottom-right": bottomRight,
	"bottom-left":  bottomLeft,
}

const lineHeightEM = 1.5

type legendItem struct {
	label string
	color color.Color
}

type legendConfig struct {
	position corner
	items    []legendItem
	label    draw.TextStyle
	padding  measure.Measure
	fill     color.Color
	fillSet  bool
	stroke   draw.LineStyle
}

func configureLegend(env *plotgen.Env, style *Style, e *expr.Expr) (*legendConfig, error) {
	l := &env.Layer
	c := &legendConfig{
		label:   style.Legend.Label,
		padding: style.Legend.Padding,
		fill:    style.Legend.Fill,
		stroke:  style.Legend.Border,
	}
	readItem := func(e *expr.Expr) error {
		it := legendItem{}
		err := expr.WalkMap(e, expr.Bindings{
			{"label", expr.String(&it.label)},
			{"color", plotgen.BindColor(&it.color)},
		}, true)
		if err != nil {
			return err
		}
		if it.color == nil {
			it.color = plotutil.Color(len(c.items))
		}
		c.items = append(c.items, it)
		return nil
	}
	err := walk("legend", e,
		expr.Bindings{
			{"position", expr.Enum(&c.position, corners)},
			{"item", readItem},
			{"font", plotgen.BindFont(&c.label.Font)},
			{"font-size", plotgen.BindFontSize(l, &c.label.Font.Size)},
			{"label-color", plotgen.BindColor(&c.label.Color)},
			{"padding", plotgen.BindMeasure(&c.padding)},
			{"fill", expr.Each(plotgen.BindFill(&c.fill), func(*expr.Expr) error {
				c.fillSet = true
				return nil
			})},
		},
		plotgen.StrokeBindings(l, &c.stroke))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// box returns the legend rectangle inside clip. pad is the padding in
// pixels.
func (c *legendConfig) box(clip vg.Rectangle, pad vg.Length) vg.Rectangle {
	em := c.label.Font.Size
	var longest vg.Length
	for _, it := range c.items {
		if w := c.label.Font.Width(it.label); w > longest {
			longest = w
		}
	}
	size := vg.Point{
		X: 2*pad + em + em/2 + longest,
		Y: 2*pad + vg.Length(len(c.items))*lineHeightEM*em,
	}

	var min vg.Point
	switch c.position {
	case topLeft, bottomLeft:
		min.X = clip.Min.X + pad
	default:
		min.X = clip.Max.X - pad - size.X
	}
	switch c.position {
	case bottomLeft, bottomRight:
		min.Y = clip.Min.Y + pad
	default:
		min.Y = clip.Max.Y - pad - size.Y
	}
	return vg.Rectangle{Min: min, Max: min.Add(size)}
}

// legendDraw draws the legend box inside its own layout which is removed
// again afterwards.
func legendDraw(env *plotgen.Env, plot *plotgen.PlotConfig, style *Style, e *expr.Expr) error {
	c, err := configureLegend(env, style, e)
	if err != nil {
		return err
	}
	if len(c.items) == 0 {
		return nil
	}
	l := &env.Layer
	if !c.fillSet && plot.Background != nil && plot.Background.Fill != nil {
		c.fill = plot.Background.Fill
	}

	// Percentages refer to the width of the plot area.
	clip := plot.Clip(l)
	pad := l.Resolve(c.padding, clip.Size().X)

	plot.PushLayout(c.box(clip, pad))
	defer plot.PopLayout()

	box := plot.Clip(l)
	env.Sink.DrawPath(box.Path(), c.stroke, c.fill)

	em := c.label.Font.Size
	line := lineHeightEM * em
	sty := c.label
	sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	for i, it := range c.items {
		cy := box.Max.Y - pad - (vg.Length(i)+0.5)*line
		sw := vg.Rectangle{
			Min: vg.Point{X: box.Min.X + pad, Y: cy - em/2},
			Max: vg.Point{X: box.Min.X + pad + em, Y: cy + em/2},
		}
		env.Sink.DrawPath(sw.Path(), draw.LineStyle{}, it.color)

		pt := vg.Point{X: sw.Max.X + em/2, Y: cy}
		if err := env.DrawText(it.label, pt, sty); err != nil {
			return err
		}
	}
	return nil
}
