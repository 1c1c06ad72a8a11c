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

const defaultPointSizePT = 4

type shape int

const (
	circle shape = iota
	square
)

var shapes = map[string]shape{"circle": circle, "square": square}

// pointsConfig configures one mark per data point. Size is the
// diameter of the mark.
type pointsConfig struct {
	base
	x, y   data.Buffer
	size   measure.Measure
	sizes  []measure.Measure
	color  color.Color
	colors []color.Color
	shape  shape
	label  labelConfig
}

func configurePoints(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*pointsConfig, error) {
	l := &env.Layer
	c := &pointsConfig{}
	c.seed(plot)
	c.size = measure.FromPt(defaultPointSizePT)
	c.color = l.Foreground
	c.label.seed(l)

	err := walk("points", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"size", plotgen.BindMeasure(&c.size)},
			{"sizes", plotgen.BindMeasures(&c.sizes)},
			{"color", plotgen.BindColor(&c.color)},
			{"colors", plotgen.BindColors(&c.colors)},
			{"shape", expr.Enum(&c.shape, shapes)},
		},
		c.label.bindings(l),
		c.bindings())
	if err != nil {
		return nil, err
	}
	if err := checkLen("points", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	return c, nil
}

func pointsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configurePoints(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y)
}

func pointsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configurePoints(env, plot, e)
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
	// Percentages refer to the plot width.
	span := clip.Size().X
	radius := func(i int) vg.Length {
		return l.Resolve(cyclic(c.sizes, i, c.size), span) / 2
	}

	pts := project(clip, xs, ys)
	for i, center := range pts {
		r := radius(i)
		if r <= 0 {
			continue
		}
		var p vg.Path
		switch c.shape {
		case square:
			p = vg.Rectangle{
				Min: vg.Point{X: center.X - r, Y: center.Y - r},
				Max: vg.Point{X: center.X + r, Y: center.Y + r},
			}.Path()
		default:
			p = plotgen.Circle(center, r)
		}
		env.Sink.DrawPath(p, draw.LineStyle{}, cyclic(c.colors, i, c.color))
	}

	pad := c.label.pad(l)
	sty := c.label.style(draw.XCenter, draw.YBottom)
	for i := 0; i < c.label.count(len(pts)); i++ {
		pt := vg.Point{X: pts[i].X, Y: pts[i].Y + radius(i) + pad}
		if err := env.DrawText(c.label.labels[i], pt, sty); err != nil {
			return err
		}
	}
	return nil
}
