package plotgen

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// A Tick is a position on a scale, optionally labeled. Value is in the
// input space of Scale.Translate: category ticks carry the slot index.
type Tick struct {
	Value float64
	Label string
	Minor bool
}

// DefaultTimeFormat is used to label ticks of time scales.
const DefaultTimeFormat = "2006-01-02"

// Ticks returns the tick marks of s for at most max major ticks.
// Only time scales make use of format.
func (s *Scale) Ticks(max int, format string) []Tick {
	if max <= 0 {
		max = 1
	}
	d := s.Domain()

	switch s.Kind {
	case Categorical:
		ticks := make([]Tick, 0, len(s.Categories))
		for i, c := range s.Categories {
			ticks = append(ticks, Tick{Value: float64(i), Label: c})
		}
		return ticks

	case Logarithmic:
		return fromPlotTicks(plot.LogTicks{}.Ticks(d.Min, d.Max))

	case Time:
		if format == "" {
			format = DefaultTimeFormat
		}
		return fromPlotTicks(plot.TimeTicks{Format: format}.Ticks(d.Min, d.Max))
	}

	lin := scale.Linear{Min: d.Min, Max: d.Max, Base: 10}
	major, minor := lin.Ticks(scale.TickOptions{Max: max})
	if len(major) == 0 {
		return fromPlotTicks(plot.DefaultTicks{}.Ticks(d.Min, d.Max))
	}

	var ticks []Tick
	isMajor := make(map[float64]bool, len(major))
	for _, x := range major {
		x = cleanZero(x)
		isMajor[x] = true
		ticks = append(ticks, Tick{Value: x, Label: fmt.Sprintf("%.6g", x)})
	}
	for _, x := range minor {
		x = cleanZero(x)
		if isMajor[x] || x < d.Min || x > d.Max {
			continue
		}
		ticks = append(ticks, Tick{Value: x, Minor: true})
	}
	return ticks
}

func fromPlotTicks(pt []plot.Tick) []Tick {
	ticks := make([]Tick, len(pt))
	for i, t := range pt {
		ticks[i] = Tick{Value: t.Value, Label: t.Label, Minor: t.IsMinor()}
	}
	return ticks
}

// cleanZero turns values like 1e-17 produced by linspacing into 0.
func cleanZero(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 0
	}
	return x
}
