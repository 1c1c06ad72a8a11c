// Package geom provides the geometry elements which display data in a
// plot: bars, lines, areas, points and so on.
//
// Every geometry is evaluated twice. Autorange binds the configuration
// and widens the plot scales to cover the data; it never draws. Draw
// binds the configuration again, translates the data through the (by
// now complete) scales and emits paths and labels into the clip region
// of the plot.
//
// The different kinds have plural names like Bars or Points as each
// element draws one mark per data point.
package geom

import (
	"fmt"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
)

// Kind is a geometry kind.
type Kind int

const (
	Areas Kind = iota
	Bars
	Errorbars
	Labels
	Lines
	Points
	Polygons
	Rectangles
	Vectors
)

var kindNames = []string{
	"areas", "bars", "errorbars", "labels", "lines",
	"points", "polygons", "rectangles", "vectors",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Lookup returns the geometry kind called name.
func Lookup(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Names returns the names of all geometry kinds.
func Names() []string {
	return append([]string(nil), kindNames...)
}

// Autorange fits the scales of plot to the data configured in e.
func (k Kind) Autorange(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	switch k {
	case Areas:
		return areasAutorange(env, plot, e)
	case Bars:
		return barsAutorange(env, plot, e)
	case Errorbars:
		return errorbarsAutorange(env, plot, e)
	case Labels:
		return labelsAutorange(env, plot, e)
	case Lines:
		return linesAutorange(env, plot, e)
	case Points:
		return pointsAutorange(env, plot, e)
	case Polygons:
		return polygonsAutorange(env, plot, e)
	case Rectangles:
		return rectanglesAutorange(env, plot, e)
	case Vectors:
		return vectorsAutorange(env, plot, e)
	}
	return fmt.Errorf("unknown geometry %s", k)
}

// Draw draws the element configured in e onto env.Sink.
func (k Kind) Draw(env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	switch k {
	case Areas:
		return areasDraw(env, plot, e)
	case Bars:
		return barsDraw(env, plot, e)
	case Errorbars:
		return errorbarsDraw(env, plot, e)
	case Labels:
		return labelsDraw(env, plot, e)
	case Lines:
		return linesDraw(env, plot, e)
	case Points:
		return pointsDraw(env, plot, e)
	case Polygons:
		return polygonsDraw(env, plot, e)
	case Rectangles:
		return rectanglesDraw(env, plot, e)
	case Vectors:
		return vectorsDraw(env, plot, e)
	}
	return fmt.Errorf("unknown geometry %s", k)
}
