package guide

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
)

// position of an axis relative to the clip region.
type position int

const (
	bottom position = iota
	left
	top
	right
)

var positions = map[string]position{
	"bottom": bottom,
	"left":   left,
	"top":    top,
	"right":  right,
}

const defaultTicks = 6

type axisConfig struct {
	position   position
	title      string
	ticks      int
	format     string
	minorTicks bool

	line, major, minor draw.LineStyle
	tickLength         vg.Length
	labelPadding       vg.Length
	titleOffset        vg.Length
	label, titleStyle  draw.TextStyle
}

func newAxisConfig(style *Style) *axisConfig {
	return &axisConfig{
		ticks:        defaultTicks,
		line:         style.Axis.Line,
		major:        style.Axis.MajorTick,
		minor:        style.Axis.MinorTick,
		tickLength:   style.Axis.TickLength,
		labelPadding: style.Axis.LabelPadding,
		titleOffset:  style.Axis.TitleOffset,
		label:        style.TickLabel,
		titleStyle:   style.Title,
	}
}

// styleBindings are the keys shared by axis and axes.
func (c *axisConfig) styleBindings(l *plotgen.Layer) expr.Bindings {
	return expr.Bindings{
		{"ticks", expr.Int(&c.ticks)},
		{"minor-ticks", expr.Bool(&c.minorTicks)},
		{"label-format", expr.String(&c.format)},
		{"color", c.setColor(true)},
		{"stroke-color", c.setColor(false)},
		{"stroke-width", c.setWidth(l)},
		{"font", plotgen.BindFont(&c.label.Font)},
		{"font-size", plotgen.BindFontSize(l, &c.label.Font.Size)},
		{"label-color", plotgen.BindColor(&c.label.Color)},
		{"title-font-size", plotgen.BindFontSize(l, &c.titleStyle.Font.Size)},
		{"tick-length", plotgen.BindSize(l, &c.tickLength)},
		{"label-padding", plotgen.BindSize(l, &c.labelPadding)},
		{"title-offset", plotgen.BindSize(l, &c.titleOffset)},
	}
}

// setColor colours the line and ticks, and with text also the labels.
func (c *axisConfig) setColor(text bool) expr.Handler {
	return func(e *expr.Expr) error {
		var col color.Color
		if err := plotgen.BindColor(&col)(e); err != nil {
			return err
		}
		c.line.Color, c.major.Color, c.minor.Color = col, col, col
		if text {
			c.label.Color, c.titleStyle.Color = col, col
		}
		return nil
	}
}

func (c *axisConfig) setWidth(l *plotgen.Layer) expr.Handler {
	return func(e *expr.Expr) error {
		var w vg.Length
		if err := plotgen.BindSize(l, &w)(e); err != nil {
			return err
		}
		c.line.Width, c.major.Width, c.minor.Width = w, w, w
		return nil
	}
}

func configureAxis(env *plotgen.Env, style *Style, e *expr.Expr) (*axisConfig, error) {
	c := newAxisConfig(style)
	err := walk("axis", e,
		expr.Bindings{
			{"position", expr.Enum(&c.position, positions)},
			{"title", expr.String(&c.title)},
		},
		c.styleBindings(&env.Layer))
	if err != nil {
		return nil, err
	}
	if c.ticks < 0 {
		return nil, plotgen.ConfigErrorf("axis", "ticks", "negative tick count %d", c.ticks)
	}
	return c, nil
}

func axisDraw(env *plotgen.Env, plot *plotgen.PlotConfig, style *Style, e *expr.Expr) error {
	c, err := configureAxis(env, style, e)
	if err != nil {
		return err
	}
	return c.draw(env, plot)
}

// geometry returns the start of the axis, its extent and the outward
// normal.
func (c *axisConfig) geometry(clip vg.Rectangle) (origin, along, out vg.Point) {
	size := clip.Size()
	switch c.position {
	case top:
		return vg.Point{X: clip.Min.X, Y: clip.Max.Y}, vg.Point{X: size.X}, vg.Point{Y: 1}
	case left:
		return clip.Min, vg.Point{Y: size.Y}, vg.Point{X: -1}
	case right:
		return vg.Point{X: clip.Max.X, Y: clip.Min.Y}, vg.Point{Y: size.Y}, vg.Point{X: 1}
	default:
		return clip.Min, vg.Point{X: size.X}, vg.Point{Y: -1}
	}
}

func (c *axisConfig) scale(plot *plotgen.PlotConfig) *plotgen.Scale {
	if c.position == left || c.position == right {
		return &plot.ScaleY
	}
	return &plot.ScaleX
}

var labelAlign = map[position]struct {
	x draw.XAlignment
	y draw.YAlignment
}{
	bottom: {draw.XCenter, draw.YTop},
	top:    {draw.XCenter, draw.YBottom},
	left:   {draw.XRight, draw.YCenter},
	right:  {draw.XLeft, draw.YCenter},
}

func (c *axisConfig) draw(env *plotgen.Env, plot *plotgen.PlotConfig) error {
	clip := plot.Clip(&env.Layer)
	origin, along, out := c.geometry(clip)
	at := func(f float64) vg.Point {
		return origin.Add(along.Scale(vg.Length(f)))
	}

	env.Sink.DrawPath(plotgen.Polyline(at(0), at(1)), c.line, nil)

	if c.ticks > 0 {
		s := c.scale(plot)
		label := c.label
		label.XAlign, label.YAlign = labelAlign[c.position].x, labelAlign[c.position].y
		for _, t := range s.Ticks(c.ticks, c.format) {
			f := s.Translate(t.Value)
			if f < -1e-9 || f > 1+1e-9 || math.IsNaN(f) {
				continue
			}
			p := at(f)
			sty, length := c.major, c.tickLength
			if t.Minor {
				if !c.minorTicks {
					continue
				}
				sty, length = c.minor, length/2
			}
			env.Sink.DrawPath(plotgen.Polyline(p, p.Add(out.Scale(length))), sty, nil)
			if t.Minor || t.Label == "" {
				continue
			}
			lp := p.Add(out.Scale(c.tickLength + c.labelPadding))
			if err := env.DrawText(t.Label, lp, label); err != nil {
				return err
			}
		}
	}

	if c.title == "" {
		return nil
	}
	ts := c.titleStyle
	ts.XAlign, ts.YAlign = draw.XCenter, draw.YTop
	switch c.position {
	case top:
		ts.YAlign = draw.YBottom
	case left:
		ts.Rotation, ts.YAlign = math.Pi/2, draw.YBottom
	case right:
		ts.Rotation, ts.YAlign = -math.Pi/2, draw.YBottom
	}
	return env.DrawText(c.title, at(0.5).Add(out.Scale(c.titleOffset)), ts)
}

// ----------------------------------------------------------------------------
// Axes

type axesConfig struct {
	axisConfig
	positions      []position
	titleX, titleY string
}

func configureAxes(env *plotgen.Env, style *Style, e *expr.Expr) (*axesConfig, error) {
	c := &axesConfig{
		axisConfig: *newAxisConfig(style),
		positions:  []position{bottom, left},
	}
	readPositions := func(e *expr.Expr) error {
		var ps []position
		for _, it := range e.Items() {
			var p position
			if err := expr.Enum(&p, positions)(it); err != nil {
				return err
			}
			ps = append(ps, p)
		}
		c.positions = ps
		return nil
	}
	err := walk("axes", e,
		expr.Bindings{
			{"position", readPositions},
			{"title-x", expr.String(&c.titleX)},
			{"title-y", expr.String(&c.titleY)},
		},
		c.styleBindings(&env.Layer))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// axesDraw draws one axis per listed position with the shared style.
func axesDraw(env *plotgen.Env, plot *plotgen.PlotConfig, style *Style, e *expr.Expr) error {
	c, err := configureAxes(env, style, e)
	if err != nil {
		return err
	}
	for _, p := range c.positions {
		a := c.axisConfig
		a.position = p
		switch p {
		case bottom:
			a.title = c.titleX
		case left:
			a.title = c.titleY
		default:
			a.title = ""
		}
		if err := a.draw(env, plot); err != nil {
			return err
		}
	}
	return nil
}
