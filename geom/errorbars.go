package geom

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

const (
	defaultErrorbarStrokePT = 1
	defaultErrorbarCapPT    = 6
)

// errorbarsConfig configures whiskers around data points. A whisker is
// drawn for every axis with a low or high buffer; a missing end
// defaults to the data point itself.
type errorbarsConfig struct {
	base
	x, xLow, xHigh data.Buffer
	y, yLow, yHigh data.Buffer
	stroke         draw.LineStyle
	capSize        measure.Measure
}

func configureErrorbars(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*errorbarsConfig, error) {
	l := &env.Layer
	c := &errorbarsConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Width: l.Pt(defaultErrorbarStrokePT), Color: l.Foreground}
	c.capSize = measure.FromPt(defaultErrorbarCapPT)

	err := walk("errorbars", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"data-x-low", plotgen.BindBuffer(&c.xLow)},
			{"data-x-high", plotgen.BindBuffer(&c.xHigh)},
			{"data-y-low", plotgen.BindBuffer(&c.yLow)},
			{"data-y-high", plotgen.BindBuffer(&c.yHigh)},
			{"bar-width", plotgen.BindMeasure(&c.capSize)},
			{"color", plotgen.BindColor(&c.stroke.Color)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.bindings())
	if err != nil {
		return nil, err
	}

	if err := checkLen("errorbars", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		key string
		buf data.Buffer
	}{
		{"data-x-low", c.xLow}, {"data-x-high", c.xHigh},
		{"data-y-low", c.yLow}, {"data-y-high", c.yHigh},
	} {
		if err := checkLen("errorbars", "data-x", c.x, p.key, p.buf, true); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func errorbarsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureErrorbars(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x, c.xLow, c.xHigh); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y, c.yLow, c.yHigh)
}

func errorbarsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureErrorbars(env, plot, e)
	if err != nil {
		return err
	}
	l := &env.Layer
	clip := plot.Clip(l)

	var t [6][]float64
	for i, b := range []struct {
		s   *plotgen.Scale
		buf data.Buffer
	}{
		{&c.scaleX, c.x}, {&c.scaleX, c.xLow}, {&c.scaleX, c.xHigh},
		{&c.scaleY, c.y}, {&c.scaleY, c.yLow}, {&c.scaleY, c.yHigh},
	} {
		if t[i], err = b.s.TranslateBatch(b.buf); err != nil {
			return err
		}
	}
	xs, xLows, xHighs := t[0], t[1], t[2]
	ys, yLows, yHighs := t[3], t[4], t[5]

	// Cap percentages refer to the plot extent along the cap.
	size := clip.Size()
	whisker := func(lo, hi, dir vg.Point) vg.Path {
		half := l.Resolve(c.capSize, dir.Dot(size)) / 2
		var p vg.Path
		p.Move(lo)
		p.Line(hi)
		for _, end := range []vg.Point{lo, hi} {
			p.Move(end.Sub(dir.Scale(half)))
			p.Line(end.Add(dir.Scale(half)))
		}
		return p
	}
	for i := range xs {
		if len(yLows) > 0 || len(yHighs) > 0 {
			lo := plotgen.Map(clip, xs[i], cyclic(yLows, i, ys[i]))
			hi := plotgen.Map(clip, xs[i], cyclic(yHighs, i, ys[i]))
			env.Sink.DrawPath(whisker(lo, hi, vg.Point{X: 1}), c.stroke, nil)
		}
		if len(xLows) > 0 || len(xHighs) > 0 {
			lo := plotgen.Map(clip, cyclic(xLows, i, xs[i]), ys[i])
			hi := plotgen.Map(clip, cyclic(xHighs, i, xs[i]), ys[i])
			env.Sink.DrawPath(whisker(lo, hi, vg.Point{Y: 1}), c.stroke, nil)
		}
	}
	return nil
}
