// Package guide draws the decorations of a plot which help reading the
// data: backgrounds, axes, grids and legends.
//
// Guides never change the scales. They are checked before any drawing
// happens and drawn after autoranging, so they see the final domains.
package guide

import (
	"fmt"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
)

// Kind is a guide kind.
type Kind int

const (
	Background Kind = iota
	Axis
	Axes
	Grid
	Legend
)

var kindNames = []string{"background", "axis", "axes", "grid", "legend"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Lookup returns the guide kind called name.
func Lookup(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Names returns the names of all guide kinds.
func Names() []string {
	return append([]string(nil), kindNames...)
}

// Check validates the configuration e without drawing.
func (k Kind) Check(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	style := DefaultStyle(&env.Layer)
	var err error
	switch k {
	case Background:
		_, err = configureBackground(env, &style, e)
	case Axis:
		_, err = configureAxis(env, &style, e)
	case Axes:
		_, err = configureAxes(env, &style, e)
	case Grid:
		_, err = configureGrid(env, &style, e)
	case Legend:
		_, err = configureLegend(env, &style, e)
	default:
		err = fmt.Errorf("unknown guide %s", k)
	}
	return err
}

// Draw draws the guide configured in e.
func (k Kind) Draw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	style := DefaultStyle(&env.Layer)
	switch k {
	case Background:
		return backgroundDraw(env, plot, &style, e)
	case Axis:
		return axisDraw(env, plot, &style, e)
	case Axes:
		return axesDraw(env, plot, &style, e)
	case Grid:
		return gridDraw(env, plot, &style, e)
	case Legend:
		return legendDraw(env, plot, &style, e)
	}
	return fmt.Errorf("unknown guide %s", k)
}

func walk(element string, e *expr.Expr, tables ...expr.Bindings) error {
	return plotgen.WrapConfig(element, expr.WalkMap(e, plotgen.Concat(tables...), true))
}
