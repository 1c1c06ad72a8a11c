// Scale Transformations
//
// A transformation maps an interval of the data domain onto an interval
// of the output, usually the unit interval of an axis.
package plotgen

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// A Transformation bundles two functions Trans and Inverse. Trans maps
// x from the interval from to the interval to; Inverse undoes this.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		t := scale.Linear{Min: from.Min, Max: from.Max}.Map(x)
		return to.Min + (to.Max-to.Min)*t
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min + t*(from.Max-from.Min)
	},
}

// Log10Trans maps from to to logarithmically. The mapping does not depend
// on the base of the logarithm, so it serves all logarithmic scales.
// Both edges of from must be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
}
