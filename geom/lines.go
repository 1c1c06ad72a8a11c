package geom

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
)

const defaultLineWidthPT = 2

// linesConfig configures a polyline through the data points.
type linesConfig struct {
	base
	x, y   data.Buffer
	stroke draw.LineStyle
	label  labelConfig
}

func configureLines(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*linesConfig, error) {
	l := &env.Layer
	c := &linesConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Width: l.Pt(defaultLineWidthPT), Color: l.Foreground}
	c.label.seed(l)

	err := walk("lines", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"color", plotgen.BindColor(&c.stroke.Color)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.label.bindings(l),
		c.bindings())
	if err != nil {
		return nil, err
	}
	if err := checkLen("lines", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	return c, nil
}

func linesAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureLines(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y)
}

func linesDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureLines(env, plot, e)
	if err != nil {
		return err
	}
	clip := plot.Clip(&env.Layer)

	xs, err := c.scaleX.TranslateBatch(c.x)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateBatch(c.y)
	if err != nil {
		return err
	}
	pts := project(clip, xs, ys)
	if len(pts) > 0 {
		env.Sink.DrawPath(plotgen.Polyline(pts...), c.stroke, nil)
	}

	pad := c.label.pad(&env.Layer)
	sty := c.label.style(draw.XCenter, draw.YBottom)
	for i := 0; i < c.label.count(len(pts)); i++ {
		pt := vg.Point{X: pts[i].X, Y: pts[i].Y + pad}
		if err := env.DrawText(c.label.labels[i], pt, sty); err != nil {
			return err
		}
	}
	return nil
}
