package guide

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
)

type backgroundConfig struct {
	fill   color.Color
	stroke draw.LineStyle
}

func configureBackground(env *plotgen.Env, style *Style, e *expr.Expr) (*backgroundConfig, error) {
	l := &env.Layer
	c := &backgroundConfig{
		fill:   style.Background.Fill,
		stroke: style.Background.Border,
	}
	err := walk("background", e,
		expr.Bindings{
			{"color", plotgen.BindFill(&c.fill)},
			{"fill", plotgen.BindFill(&c.fill)},
		},
		plotgen.StrokeBindings(l, &c.stroke))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// backgroundDraw paints the clip region and records the paint in plot.
func backgroundDraw(env *plotgen.Env, plot *plotgen.PlotConfig, style *Style, e *expr.Expr) error {
	c, err := configureBackground(env, style, e)
	if err != nil {
		return err
	}
	clip := plot.Clip(&env.Layer)
	env.Sink.DrawPath(clip.Path(), c.stroke, c.fill)
	plot.Background = &plotgen.BackgroundStyle{Fill: c.fill, Stroke: c.stroke}
	return nil
}
