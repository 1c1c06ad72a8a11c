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

const defaultRectangleSizePT = 8

// rectanglesConfig configures rectangles centred on the data points.
// Width and height fall back to size, size to 8pt.
type rectanglesConfig struct {
	base
	x, y            data.Buffer
	size            measure.Measure
	sizes           []measure.Measure
	width, height   measure.Measure
	widths, heights []measure.Measure
	stroke          draw.LineStyle
	fill            color.Color
}

func configureRectangles(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*rectanglesConfig, error) {
	l := &env.Layer
	c := &rectanglesConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Color: l.Foreground}
	c.fill = l.Foreground

	err := walk("rectangles", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"size", plotgen.BindMeasure(&c.size)},
			{"sizes", plotgen.BindMeasures(&c.sizes)},
			{"width", plotgen.BindMeasure(&c.width)},
			{"widths", plotgen.BindMeasures(&c.widths)},
			{"height", plotgen.BindMeasure(&c.height)},
			{"heights", plotgen.BindMeasures(&c.heights)},
			{"fill", plotgen.BindFill(&c.fill)},
			{"color", colorBinding(&c.stroke, &c.fill)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.bindings())
	if err != nil {
		return nil, err
	}
	if err := checkLen("rectangles", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	return c, nil
}

// extent returns the measure for data point i, preferring the per-datum
// list over the single value, the specific key over size.
func (c *rectanglesConfig) extent(i int, list []measure.Measure, single measure.Measure) measure.Measure {
	if len(list) > 0 {
		return list[i%len(list)]
	}
	if !single.IsUnset() {
		return single
	}
	if len(c.sizes) > 0 {
		return c.sizes[i%len(c.sizes)]
	}
	return c.size.Or(measure.FromPt(defaultRectangleSizePT))
}

func rectanglesAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureRectangles(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y)
}

func rectanglesDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureRectangles(env, plot, e)
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
	for i, center := range project(clip, xs, ys) {
		half := vg.Point{
			X: l.Resolve(c.extent(i, c.widths, c.width), size.X) / 2,
			Y: l.Resolve(c.extent(i, c.heights, c.height), size.Y) / 2,
		}
		r := vg.Rectangle{Min: center.Sub(half), Max: center.Add(half)}
		env.Sink.DrawPath(plotgen.CanonicRectangle(r).Path(), c.stroke, c.fill)
	}
	return nil
}
