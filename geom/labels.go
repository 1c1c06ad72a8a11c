package geom

import (
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

var xAligns = map[string]draw.XAlignment{
	"left":   draw.XLeft,
	"center": draw.XCenter,
	"right":  draw.XRight,
}

var yAligns = map[string]draw.YAlignment{
	"top":    draw.YTop,
	"center": draw.YCenter,
	"bottom": draw.YBottom,
}

// labelsConfig places one text per data point.
type labelsConfig struct {
	base
	x, y             data.Buffer
	labels           []string
	offsetX, offsetY measure.Measure
	style            draw.TextStyle
}

func configureLabels(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*labelsConfig, error) {
	l := &env.Layer
	c := &labelsConfig{style: l.TextStyle()}
	c.style.XAlign, c.style.YAlign = draw.XCenter, draw.YCenter
	c.seed(plot)

	err := walk("labels", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"labels", plotgen.BindStrings(&c.labels)},
			{"offset-x", plotgen.BindMeasure(&c.offsetX)},
			{"offset-y", plotgen.BindMeasure(&c.offsetY)},
			{"font", plotgen.BindFont(&c.style.Font)},
			{"font-size", plotgen.BindFontSize(l, &c.style.Font.Size)},
			{"color", plotgen.BindColor(&c.style.Color)},
			{"align-x", expr.Enum(&c.style.XAlign, xAligns)},
			{"align-y", expr.Enum(&c.style.YAlign, yAligns)},
		},
		c.bindings())
	if err != nil {
		return nil, err
	}
	if err := checkLen("labels", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	if len(c.labels) != len(c.x) {
		return nil, plotgen.ConfigErrorf("labels", "labels",
			"length mismatch: data-x has %d values, labels has %d", len(c.x), len(c.labels))
	}
	return c, nil
}

func labelsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureLabels(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y)
}

func labelsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureLabels(env, plot, e)
	if err != nil {
		return err
	}
	l := &env.Layer
	clip := plot.Clip(l)

	xs, err := c.scaleX.TranslateBatch(c.x)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateBatch(c.y)
	if err != nil {
		return err
	}

	size := clip.Size()
	dx := l.Resolve(c.offsetX, size.X)
	dy := l.Resolve(c.offsetY, size.Y)
	for i, pt := range project(clip, xs, ys) {
		pt.X += dx
		pt.Y += dy
		if err := env.DrawText(c.labels[i], pt, c.style); err != nil {
			return err
		}
	}
	return nil
}
