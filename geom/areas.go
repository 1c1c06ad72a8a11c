package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
)

// areasConfig configures the filled region between the data line and
// a low line, which defaults to the zero line.
type areasConfig struct {
	base
	direction direction
	x, xLow   data.Buffer
	y, yLow   data.Buffer
	stroke    draw.LineStyle
	fill      color.Color
}

func configureAreas(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*areasConfig, error) {
	l := &env.Layer
	c := &areasConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Color: l.Foreground}
	c.fill = l.Foreground

	err := walk("areas", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"data-x-high", plotgen.BindBuffer(&c.x)},
			{"data-y-high", plotgen.BindBuffer(&c.y)},
			{"data-x-low", plotgen.BindBuffer(&c.xLow)},
			{"data-y-low", plotgen.BindBuffer(&c.yLow)},
			{"fill", plotgen.BindFill(&c.fill)},
			{"color", colorBinding(&c.stroke, &c.fill)},
			{"direction", expr.Enum(&c.direction, directions)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.bindings())
	if err != nil {
		return nil, err
	}

	if err := checkLen("areas", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	if err := checkLen("areas", "data-x", c.x, "data-x-low", c.xLow, true); err != nil {
		return nil, err
	}
	if err := checkLen("areas", "data-y", c.y, "data-y-low", c.yLow, true); err != nil {
		return nil, err
	}
	return c, nil
}

func areasAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureAreas(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x, c.xLow); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y, c.yLow)
}

func areasDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureAreas(env, plot, e)
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
	if len(xs) == 0 {
		return nil
	}

	// The outline runs along the data and back along the low line.
	var pts []vg.Point
	for i := range xs {
		pts = append(pts, plotgen.Map(clip, xs[i], ys[i]))
	}
	if c.direction == horizontal {
		lows, err := c.scaleX.TranslateBatch(c.xLow)
		if err != nil {
			return err
		}
		x0 := plotgen.Clamp(c.scaleX.Translate(0))
		for i := len(xs) - 1; i >= 0; i-- {
			pts = append(pts, plotgen.Map(clip, cyclic(lows, i, x0), ys[i]))
		}
	} else {
		lows, err := c.scaleY.TranslateBatch(c.yLow)
		if err != nil {
			return err
		}
		y0 := plotgen.Clamp(c.scaleY.Translate(0))
		for i := len(xs) - 1; i >= 0; i-- {
			pts = append(pts, plotgen.Map(clip, xs[i], cyclic(lows, i, y0)))
		}
	}

	env.Sink.DrawPath(plotgen.Polygon(pts...), c.stroke, c.fill)
	return nil
}
