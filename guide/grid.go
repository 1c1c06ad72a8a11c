package guide

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
)

type gridConfig struct {
	ticksX, ticksY int
	major, minor   draw.LineStyle
	minorLines     bool
}

func configureGrid(env *plotgen.Env, style *Style, e *expr.Expr) (*gridConfig, error) {
	l := &env.Layer
	c := &gridConfig{
		ticksX: defaultTicks,
		ticksY: defaultTicks,
		major:  style.Grid.Major,
		minor:  style.Grid.Minor,
	}
	err := walk("grid", e,
		expr.Bindings{
			{"ticks-x", expr.Int(&c.ticksX)},
			{"ticks-y", expr.Int(&c.ticksY)},
			{"color", plotgen.BindColor(&c.major.Color)},
			{"minor", expr.Bool(&c.minorLines)},
		},
		plotgen.StrokeBindings(l, &c.major))
	if err != nil {
		return nil, err
	}
	if c.minorLines && !plotgen.Stroked(c.minor) {
		c.minor = c.major
		c.minor.Width /= 2
	}
	return c, nil
}

// gridDraw draws a line across the clip region for every tick of the x
// and y scale. A tick count of 0 disables the lines of that axis.
func gridDraw(env *plotgen.Env, plot *plotgen.PlotConfig, style *Style, e *expr.Expr) error {
	c, err := configureGrid(env, style, e)
	if err != nil {
		return err
	}
	clip := plot.Clip(&env.Layer)

	lines := func(s *plotgen.Scale, n int, from, to func(f float64) vg.Point) {
		if n <= 0 {
			return
		}
		for _, t := range s.Ticks(n, "") {
			f := s.Translate(t.Value)
			if f < -1e-9 || f > 1+1e-9 || math.IsNaN(f) {
				continue
			}
			sty := c.major
			if t.Minor {
				if !c.minorLines {
					continue
				}
				sty = c.minor
			}
			env.Sink.DrawPath(plotgen.Polyline(from(f), to(f)), sty, nil)
		}
	}
	lines(&plot.ScaleX, c.ticksX,
		func(f float64) vg.Point { return plotgen.Map(clip, f, 0) },
		func(f float64) vg.Point { return plotgen.Map(clip, f, 1) })
	lines(&plot.ScaleY, c.ticksY,
		func(f float64) vg.Point { return plotgen.Map(clip, 0, f) },
		func(f float64) vg.Point { return plotgen.Map(clip, 1, f) })
	return nil
}
