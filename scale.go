package plotgen

import (
	"fmt"
	"math"

	"github.com/vdobler/plotgen/data"
)

// ----------------------------------------------------------------------------
// Scale

// Scale maps values of a data domain (numeric or categorical) to fractions
// of an axis. The x and y scale of a plot are shared by all geometry
// elements of that plot: every element widens the Data range (or adds
// categories) during autoranging, then all of them translate through the
// same domain while drawing.
type Scale struct {
	// Kind determines the fundamental nature of the scale.
	Kind ScaleKind

	// Min and Max are the explicitly configured bounds of the domain.
	// NaN means unset; an unset bound is derived from the Data range.
	Min, Max float64

	// Padding expands the automatic domain by Padding*(Data.Max-Data.Min)
	// on every edge not fixed by Min or Max.
	Padding float64

	// Base is the base of a logarithmic scale, 10 if unset.
	Base float64

	// Data is the range covered by actual data.
	Data Interval

	// Categories are the categories of a Categorical scale in order of
	// first appearance.
	Categories []string
}

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() Scale {
	return Scale{
		Kind: Linear,
		Min:  math.NaN(),
		Max:  math.NaN(),
		Data: unsetInterval(),
	}
}

// Clone returns a deep copy of s.
func (s Scale) Clone() Scale {
	if s.Categories != nil {
		s.Categories = append([]string(nil), s.Categories...)
	}
	return s
}

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) { s.Min = x }

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) { s.Max = x }

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	if s.Kind == Categorical {
		return len(s.Categories) > 0
	}
	return have(s.Data.Min) && have(s.Data.Max)
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	d := s.Domain()
	if s.Kind == Categorical {
		return fmt.Sprintf("Range=[%.2f:%.2f] Categories=%q %s", d.Min, d.Max, s.Categories, s.Kind)
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s",
		d.Min, d.Max, s.Data.Min, s.Data.Max, s.Kind)
}

func (s *Scale) base() float64 {
	if s.Base > 1 {
		return s.Base
	}
	return 10
}

// Fit widens s to cover every value in b. Explicit bounds are never
// changed. Categorical scales append categories not seen before, keeping
// the order of first appearance across all calls.
func (s *Scale) Fit(b data.Buffer) error {
	if s.Kind == Categorical {
		seen := s.categoryIndex()
		for _, v := range b {
			c := v.String()
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = len(s.Categories)
			s.Categories = append(s.Categories, c)
		}
		return nil
	}

	for _, v := range b {
		x, err := s.numeric(v)
		if err != nil {
			return err
		}
		s.Data.Update(x)
	}
	return nil
}

// numeric returns v in the numeric data space of s.
func (s *Scale) numeric(v data.Value) (float64, error) {
	switch s.Kind {
	case Time:
		x, ok := v.Unix()
		if !ok {
			return 0, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "not a time"}
		}
		return x, nil
	case Logarithmic:
		x, ok := v.Float()
		if !ok {
			return 0, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "not a number"}
		}
		if x <= 0 {
			return 0, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "not positive"}
		}
		return x, nil
	default:
		x, ok := v.Float()
		if !ok {
			return 0, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "not a number"}
		}
		return x, nil
	}
}

func (s *Scale) categoryIndex() map[string]int {
	idx := make(map[string]int, len(s.Categories))
	for i, c := range s.Categories {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

// Domain returns the effective domain of s: explicit bounds where set,
// the padded data range otherwise. For categorical scales the domain is
// in slot coordinates: category i occupies [i, i+1].
func (s *Scale) Domain() Interval {
	switch s.Kind {
	case Logarithmic:
		b := s.base()
		logb := func(x float64) float64 { return math.Log(x) / math.Log(b) }
		lo, hi := s.Data.Min, s.Data.Max
		if have(lo) {
			lo, hi = logb(lo), logb(hi)
		}
		min, max := s.Min, s.Max
		if have(min) {
			min = logb(min)
		}
		if have(max) {
			max = logb(max)
		}
		d := resolveDomain(min, max, lo, hi, s.Padding)
		return Interval{math.Pow(b, d.Min), math.Pow(b, d.Max)}
	case Categorical:
		lo, hi := math.NaN(), math.NaN()
		if n := len(s.Categories); n > 0 {
			lo, hi = 0, float64(n)
		}
		return resolveDomain(s.Min, s.Max, lo, hi, s.Padding)
	default:
		return resolveDomain(s.Min, s.Max, s.Data.Min, s.Data.Max, s.Padding)
	}
}

// resolveDomain combines explicit bounds with the data range. Missing
// information falls back to [0,1] and a degenerate result is widened by
// one unit on each side.
func resolveDomain(min, max, dataMin, dataMax, padding float64) Interval {
	pad := 0.0
	if have(dataMin) && have(dataMax) {
		pad = padding * (dataMax - dataMin)
	}
	if !have(min) {
		min = dataMin - pad
	}
	if !have(max) {
		max = dataMax + pad
	}

	switch {
	case !have(min) && !have(max):
		min, max = 0, 1
	case !have(min):
		min = max - 1
	case !have(max):
		max = min + 1
	}
	if min == max {
		min, max = min-1, max+1
	}
	return Interval{min, max}
}

func (s *Scale) transformation() Transformation {
	if s.Kind == Logarithmic {
		return Log10Trans
	}
	return LinearTrans
}

// Translate maps the numeric value x to a fraction of the axis. Values
// outside the domain map outside [0,1]. On a categorical scale x is a
// slot index, so Translate(i) is the centre of category i.
func (s *Scale) Translate(x float64) float64 {
	if s.Kind == Categorical {
		x += 0.5
	}
	return s.transformation().Trans(s.Domain(), unitInterval, x)
}

// TranslateValue maps a single datum to a fraction of the axis.
func (s *Scale) TranslateValue(v data.Value) (float64, error) {
	if s.Kind == Categorical {
		i, ok := s.categoryIndex()[v.String()]
		if !ok {
			return 0, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "unknown category"}
		}
		return s.Translate(float64(i)), nil
	}
	x, err := s.numeric(v)
	if err != nil {
		return 0, err
	}
	return s.Translate(x), nil
}

// TranslateBatch maps every value of b. An empty buffer yields an empty
// result.
func (s *Scale) TranslateBatch(b data.Buffer) ([]float64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	out := make([]float64, len(b))
	dom, trans := s.Domain(), s.transformation()

	if s.Kind == Categorical {
		idx := s.categoryIndex()
		for i, v := range b {
			k, ok := idx[v.String()]
			if !ok {
				return nil, &ScaleError{Kind: s.Kind, Value: v.String(), Msg: "unknown category"}
			}
			out[i] = trans.Trans(dom, unitInterval, float64(k)+0.5)
		}
		return out, nil
	}

	for i, v := range b {
		x, err := s.numeric(v)
		if err != nil {
			return nil, err
		}
		out[i] = trans.Trans(dom, unitInterval, x)
	}
	return out, nil
}

// Clamp limits the fraction f to [0,1]. NaN clamps to 0.
func Clamp(f float64) float64 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func have(x float64) bool {
	return !math.IsNaN(x)
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

var unitInterval = Interval{0, 1}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// ScaleKind

// ScaleKind selects one of the handful know scale types.
type ScaleKind int

// String returns the type of st.
func (st ScaleKind) String() string {
	if st < 0 || int(st) >= len(scaleKindNames) {
		return fmt.Sprintf("ScaleKind(%d)", int(st))
	}
	return scaleKindNames[st]
}

const (
	Linear ScaleKind = iota
	Categorical
	Logarithmic
	Time
)

var scaleKindNames = []string{"linear", "categorical", "log", "time"}
