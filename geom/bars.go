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

const defaultBarSizePT = 10

// barsConfig configures a bar chart. Bars extend from the low buffer (or
// the zero line) to the primary buffer along the direction axis.
type barsConfig struct {
	base
	direction direction
	x, xLow   data.Buffer
	y, yLow   data.Buffer
	stroke    draw.LineStyle
	fill      color.Color
	size      measure.Measure
	sizes     []measure.Measure
	offset    measure.Measure
	offsets   []measure.Measure
	label     labelConfig
}

func configureBars(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) (*barsConfig, error) {
	l := &env.Layer
	c := &barsConfig{}
	c.seed(plot)
	c.stroke = draw.LineStyle{Color: l.Foreground}
	c.fill = l.Foreground
	c.label.seed(l)

	err := walk("bars", e,
		expr.Bindings{
			{"data-x", plotgen.BindBuffer(&c.x)},
			{"data-y", plotgen.BindBuffer(&c.y)},
			{"data-x-high", plotgen.BindBuffer(&c.x)},
			{"data-y-high", plotgen.BindBuffer(&c.y)},
			{"data-x-low", plotgen.BindBuffer(&c.xLow)},
			{"data-y-low", plotgen.BindBuffer(&c.yLow)},
			{"width", plotgen.BindMeasure(&c.size)},
			{"widths", plotgen.BindMeasures(&c.sizes)},
			{"offset", plotgen.BindMeasure(&c.offset)},
			{"offsets", plotgen.BindMeasures(&c.offsets)},
			{"fill", plotgen.BindFill(&c.fill)},
			{"color", colorBinding(&c.stroke, &c.fill)},
			{"direction", expr.Enum(&c.direction, directions)},
		},
		plotgen.StrokeBindings(l, &c.stroke),
		c.label.bindings(l),
		c.bindings())
	if err != nil {
		return nil, err
	}

	if err := checkLen("bars", "data-x", c.x, "data-y", c.y, false); err != nil {
		return nil, err
	}
	if err := checkLen("bars", "data-x", c.x, "data-x-low", c.xLow, true); err != nil {
		return nil, err
	}
	if err := checkLen("bars", "data-y", c.y, "data-y-low", c.yLow, true); err != nil {
		return nil, err
	}
	return c, nil
}

func barsAutorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureBars(env, plot, e)
	if err != nil {
		return err
	}
	if err := fit(&plot.ScaleX, c.x, c.xLow); err != nil {
		return err
	}
	return fit(&plot.ScaleY, c.y, c.yLow)
}

func barsDraw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	c, err := configureBars(env, plot, e)
	if err != nil {
		return err
	}
	if c.direction == horizontal {
		return c.drawHorizontal(env, plot)
	}
	return c.drawVertical(env, plot)
}

// sizeAt returns the thickness of bar i. Percentages refer to span, the
// extent of the plot area across the bars.
func (c *barsConfig) sizeAt(l *plotgen.Layer, i int, span vg.Length) vg.Length {
	m := cyclic(c.sizes, i, c.size)
	return l.Resolve(m.Or(measure.FromPt(defaultBarSizePT)), span)
}

func (c *barsConfig) offsetAt(l *plotgen.Layer, i int, span vg.Length) vg.Length {
	return l.Resolve(cyclic(c.offsets, i, c.offset), span)
}

func (c *barsConfig) drawVertical(env *plotgen.Env, plot *plotgen.PlotConfig) error {
	l := &env.Layer
	clip := plot.Clip(l)
	span := clip.Size().X

	xs, err := c.scaleX.TranslateBatch(c.x)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateBatch(c.y)
	if err != nil {
		return err
	}
	lows, err := c.scaleY.TranslateBatch(c.yLow)
	if err != nil {
		return err
	}

	y0 := plotgen.Clamp(c.scaleY.Translate(0))
	for i := range xs {
		lo := plotgen.Map(clip, xs[i], cyclic(lows, i, y0))
		hi := plotgen.Map(clip, xs[i], ys[i])
		size := c.sizeAt(l, i, span)
		x := lo.X + c.offsetAt(l, i, span)

		p := plotgen.Polygon(
			vg.Point{X: x - size/2, Y: lo.Y},
			vg.Point{X: x - size/2, Y: hi.Y},
			vg.Point{X: x + size/2, Y: hi.Y},
			vg.Point{X: x + size/2, Y: lo.Y},
		)
		env.Sink.DrawPath(p, c.stroke, c.fill)
	}

	pad := c.label.pad(l)
	sty := c.label.style(draw.XCenter, draw.YBottom)
	for i := 0; i < c.label.count(len(xs)); i++ {
		pt := plotgen.Map(clip, xs[i], ys[i])
		pt.X += c.offsetAt(l, i, span)
		pt.Y += pad
		if err := env.DrawText(c.label.labels[i], pt, sty); err != nil {
			return err
		}
	}
	return nil
}

func (c *barsConfig) drawHorizontal(env *plotgen.Env, plot *plotgen.PlotConfig) error {
	l := &env.Layer
	clip := plot.Clip(l)
	span := clip.Size().Y

	xs, err := c.scaleX.TranslateBatch(c.x)
	if err != nil {
		return err
	}
	lows, err := c.scaleX.TranslateBatch(c.xLow)
	if err != nil {
		return err
	}
	ys, err := c.scaleY.TranslateBatch(c.y)
	if err != nil {
		return err
	}

	x0 := plotgen.Clamp(c.scaleX.Translate(0))
	for i := range xs {
		lo := plotgen.Map(clip, cyclic(lows, i, x0), ys[i])
		hi := plotgen.Map(clip, xs[i], ys[i])
		size := c.sizeAt(l, i, span)
		y := lo.Y - c.offsetAt(l, i, span)

		p := plotgen.Polygon(
			vg.Point{X: lo.X, Y: y - size/2},
			vg.Point{X: hi.X, Y: y - size/2},
			vg.Point{X: hi.X, Y: y + size/2},
			vg.Point{X: lo.X, Y: y + size/2},
		)
		env.Sink.DrawPath(p, c.stroke, c.fill)
	}

	pad := c.label.pad(l)
	sty := c.label.style(draw.XLeft, draw.YCenter)
	for i := 0; i < c.label.count(len(xs)); i++ {
		pt := plotgen.Map(clip, xs[i], ys[i])
		pt.X += pad
		pt.Y -= c.offsetAt(l, i, span)
		if err := env.DrawText(c.label.labels[i], pt, sty); err != nil {
			return err
		}
	}
	return nil
}
