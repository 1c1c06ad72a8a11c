package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
)

// polygonsConfig configures a single closed polygon through the data
// points.
type polygonsConfig struct {
	base
	x, y   data.Buffer
	stroke draw.LineStyle
	fill   color.Color
}

func configurePolygons(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*polygonsConfig, error) {
	l := &env.Layer
	c := &polygonsConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Color: l.Foreground}
	c.fill = l.Foreground

	err := walk("polygons", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"fill", plotgen.BindFill(&c.fill)},
			{"color", colorBinding(&c.stroke, &c.fill)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.bindings())
	if err != nil {
		return nil, err
	}
	if err := checkLen("polygons", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	if len(c.x) < 3 {
		return nil, plotgen.ConfigErrorf("polygons", "data-x",
			"a polygon needs at least 3 points, got %d", len(c.x))
	}
	return c, nil
}

func polygonsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configurePolygons(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y)
}

func polygonsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configurePolygons(env, plot, e)
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
	env.Sink.DrawPath(plotgen.Polygon(project(clip, xs, ys)...), c.stroke, c.fill)
	return nil
}
