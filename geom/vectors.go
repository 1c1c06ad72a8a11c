package geom

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/data"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

const (
	defaultVectorStrokePT = 1
	defaultVectorHeadPT   = 8
	headAngle             = math.Pi / 7
)

// vectorsConfig configures arrows from (x,y) to (x+dx,y+dy).
type vectorsConfig struct {
	base
	x, y, dx, dy data.Buffer
	stroke       draw.LineStyle
	headSize     measure.Measure
}

func configureVectors(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*vectorsConfig, error) {
	l := &env.Layer
	c := &vectorsConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Width: l.Pt(defaultVectorStrokePT), Color: l.Foreground}
	c.headSize = measure.FromPt(defaultVectorHeadPT)

	err := walk("vectors", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"data-dx", plotgen.BindBuffer(&c.dx)},
			{"data-dy", plotgen.BindBuffer(&c.dy)},
			{"head-size", plotgen.BindMeasure(&c.headSize)},
			{"color", plotgen.BindColor(&c.stroke.Color)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.bindings())
	if err != nil {
		return nil, err
	}
	for _, p := range []struct {
		key string
		buf data.Buffer
	}{{"data-y", c.y}, {"data-dx", c.dx}, {"data-dy", c.dy}} {
		if err := checkLen("vectors", "data-x", c.x, p.key, p.buf, false); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// tips returns the buffer of p+dp for every element.
func tips(kind plotgen.ScaleKind, p, dp data.Buffer) (data.Buffer, error) {
	out := make(data.Buffer, len(p))
	for i := range p {
		a, ok := p[i].Float()
		if !ok {
			return nil, &plotgen.ScaleError{Kind: kind, Value: p[i].String(), Msg: "not a number"}
		}
		d, ok := dp[i].Float()
		if !ok {
			return nil, &plotgen.ScaleError{Kind: kind, Value: dp[i].String(), Msg: "not a number"}
		}
		out[i] = data.Number(a + d)
	}
	return out, nil
}

func vectorsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureVectors(env, plot, e)
	if err != nil {
		return err
	}
	xEnd, err := tips(plot.ScaleX.Kind, c.x, c.dx)
	if err != nil {
		return err
	}
	yEnd, err := tips(plot.ScaleY.Kind, c.y, c.dy)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x, xEnd); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y, yEnd)
}

func vectorsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureVectors(env, plot, e)
	if err != nil {
		return err
	}
	clip := plot.Clip(&env.Layer)
	// Percentages refer to the plot width.
	head := env.Layer.Resolve(c.headSize, clip.Size().X)

	xEnd, err := tips(c.scaleX.Kind, c.x, c.dx)
	if err != nil {
		return err
	}
	yEnd, err := tips(c.scaleY.Kind, c.y, c.dy)
	if err != nil {
		return err
	}

	var t [4][]float64
	for i, b := range []struct {
		s   *plotgen.Scale
		buf data.Buffer
	}{{&c.scaleX, c.x}, {&c.scaleY, c.y}, {&c.scaleX, xEnd}, {&c.scaleY, yEnd}} {
		if t[i], err = b.s.TranslateBatch(b.buf); err != nil {
			return err
		}
	}
	from := project(clip, t[0], t[1])
	to := project(clip, t[2], t[3])

	for i := range from {
		a, b := from[i], to[i]
		env.Sink.DrawPath(plotgen.Polyline(a, b), c.stroke, nil)

		if a == b {
			continue
		}
		angle := math.Atan2(float64(b.Y-a.Y), float64(b.X-a.X))
		barb := func(da float64) vg.Point {
			return vg.Point{
				X: b.X - head*vg.Length(math.Cos(angle+da)),
				Y: b.Y - head*vg.Length(math.Sin(angle+da)),
			}
		}
		tip := plotgen.Polygon(b, barb(-headAngle), barb(headAngle))
		env.Sink.DrawPath(tip, draw.LineStyle{}, c.stroke.Color)
	}
	return nil
}
