// Package chart evaluates a complete chart description: the plot level
// scale and margin settings, the guides and the geometry elements.
//
// Evaluation runs in three phases. Validate checks every top level key
// before anything happens. Prepare sets up the scales and lets every
// geometry widen them to its data. Draw paints backgrounds first, then
// the other guides and finally the geometries, all in the order they
// appear in the description. Any error aborts the evaluation.
package chart

import (
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/geom"
	"github.com/vdobler/plotgen/guide"
)

// ----------------------------------------------------------------------------
// Chart

// A Chart is one plot built from a chart description.
type Chart struct {
	// Plot is the shared state of all elements. It is rebuilt by Prepare.
	Plot *plotgen.PlotConfig

	desc      *expr.Expr
	elements  []element
	validated bool
}

// element is one geometry or guide of the description.
type element struct {
	name  string
	index int // among the elements called name
	e     *expr.Expr

	isGeom bool
	geom   geom.Kind
	guide  guide.Kind
}

// New returns a chart for the description e.
func New(e *expr.Expr) *Chart {
	return &Chart{Plot: plotgen.NewPlotConfig(), desc: e}
}

// Eval validates, prepares and draws the chart e onto env.
func Eval(env *plotgen.Env, e *expr.Expr) error {
	c := New(e)
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.Prepare(env); err != nil {
		return err
	}
	return c.Draw(env)
}

// Validate checks that every top level key of the description is known
// and that the plot level values parse. It draws nothing and leaves
// c.Plot untouched.
func (c *Chart) Validate() error {
	scratch := plotgen.NewPlotConfig()
	counts := map[string]int{}
	var elements []element

	collect := func(name string, isGeom bool, gk geom.Kind, dk guide.Kind) expr.Bindings {
		return expr.Bindings{{name, func(e *expr.Expr) error {
			elements = append(elements, element{
				name: name, index: counts[name], e: e,
				isGeom: isGeom, geom: gk, guide: dk,
			})
			counts[name]++
			return nil
		}}}
	}

	tables := []expr.Bindings{
		plotgen.ScaleBindings(&scratch.ScaleX, &scratch.ScaleY),
		plotgen.MarginBindings(scratch),
	}
	for _, name := range geom.Names() {
		k, _ := geom.Lookup(name)
		tables = append(tables, collect(name, true, k, 0))
	}
	for _, name := range guide.Names() {
		k, _ := guide.Lookup(name)
		tables = append(tables, collect(name, false, 0, k))
	}

	err := expr.WalkMap(c.desc, plotgen.Concat(tables...), true)
	if err != nil {
		return plotgen.WrapConfig("plot", err)
	}
	c.elements = elements
	c.validated = true
	return nil
}

// Prepare applies the plot level settings to a fresh PlotConfig, checks
// the guides and autoranges every geometry in description order.
func (c *Chart) Prepare(env *plotgen.Env) error {
	if !c.validated {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	log := env.Log()

	c.Plot = plotgen.NewPlotConfig()
	settings := plotgen.Concat(
		plotgen.ScaleBindings(&c.Plot.ScaleX, &c.Plot.ScaleY),
		plotgen.MarginBindings(c.Plot),
	)
	if err := expr.WalkMap(c.desc, settings, false); err != nil {
		return plotgen.WrapConfig("plot", err)
	}
	c.debugScales(log, "after plot settings")

	for _, el := range c.elements {
		var err error
		if el.isGeom {
			err = el.geom.Autorange(env, c.Plot, el.e)
		} else {
			err = el.guide.Check(env, c.Plot, el.e)
		}
		if err != nil {
			return el.wrap(err)
		}
	}
	c.debugScales(log, "after autoranging")
	return nil
}

// Draw draws all backgrounds, then the other guides and finally the
// geometries. Prepare must have been called.
func (c *Chart) Draw(env *plotgen.Env) error {
	log := env.Log()

	passes := []func(element) bool{
		func(el element) bool { return !el.isGeom && el.guide == guide.Background },
		func(el element) bool { return !el.isGeom && el.guide != guide.Background },
		func(el element) bool { return el.isGeom },
	}
	for _, selected := range passes {
		for _, el := range c.elements {
			if !selected(el) {
				continue
			}
			var err error
			if el.isGeom {
				err = el.geom.Draw(env, c.Plot, el.e)
			} else {
				err = el.guide.Draw(env, c.Plot, el.e)
			}
			if err != nil {
				return el.wrap(err)
			}
			log.Debug("drawn", zap.String("element", el.name), zap.Int("index", el.index))
		}
	}
	return nil
}

// Elements returns the names of the elements in description order.
// It is empty before Validate.
func (c *Chart) Elements() []string {
	names := make([]string, len(c.elements))
	for i, el := range c.elements {
		names[i] = el.name
	}
	return names
}

func (el element) wrap(err error) error {
	return xerrors.Errorf("%s #%d: %w", el.name, el.index, err)
}

func (c *Chart) debugScales(log *zap.Logger, info string) {
	log.Debug("scales "+info,
		zap.Stringer("x", &c.Plot.ScaleX),
		zap.Stringer("y", &c.Plot.ScaleY),
	)
}
