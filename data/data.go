// Package data contains the data buffers fed into scales and geometries.
package data

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a single raw datum. It keeps its textual form and, if the text
// reads as a number, the parsed float.
type Value struct {
	text    string
	num     float64
	numeric bool
}

// Number returns a numeric value.
func Number(x float64) Value {
	return Value{text: strconv.FormatFloat(x, 'g', -1, 64), num: x, numeric: true}
}

// Text returns a value which is never treated as a number.
func Text(s string) Value {
	return Value{text: s}
}

// Parse returns a numeric value if s is a valid float and a text value
// otherwise.
func Parse(s string) Value {
	if x, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Value{text: s, num: x, numeric: true}
	}
	return Value{text: s}
}

// Float returns the numeric value of v and whether v is numeric.
func (v Value) Float() (float64, bool) {
	if !v.numeric {
		return math.NaN(), false
	}
	return v.num, true
}

// IsNumeric reports whether v holds a number.
func (v Value) IsNumeric() bool { return v.numeric }

func (v Value) String() string { return v.text }

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time interprets v as a point in time. Numbers are unix seconds.
func (v Value) Time() (time.Time, bool) {
	if v.numeric {
		sec, frac := math.Modf(v.num)
		return time.Unix(int64(sec), int64(frac*1e9)).UTC(), true
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(v.text)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Unix returns v as fractional unix seconds, the numeric form used by time
// scales.
func (v Value) Unix() (float64, bool) {
	t, ok := v.Time()
	if !ok {
		return math.NaN(), false
	}
	return float64(t.UnixNano()) / 1e9, true
}

// ----------------------------------------------------------------------------
// Buffer

// Buffer is an ordered sequence of values. A nil (zero length) Buffer is
// the absent state: geometries use their default instead of it.
type Buffer []Value

// Numbers builds a numeric buffer.
func Numbers(xs ...float64) Buffer {
	b := make(Buffer, len(xs))
	for i, x := range xs {
		b[i] = Number(x)
	}
	return b
}

// Strings builds a buffer of parsed values, see Parse.
func Strings(ss ...string) Buffer {
	b := make(Buffer, len(ss))
	for i, s := range ss {
		b[i] = Parse(s)
	}
	return b
}

func (b Buffer) Len() int { return len(b) }

// Floats returns all values of b as floats. The boolean is false if one of
// the values is not numeric.
func (b Buffer) Floats() ([]float64, bool) {
	xs := make([]float64, len(b))
	for i, v := range b {
		x, ok := v.Float()
		if !ok {
			return nil, false
		}
		xs[i] = x
	}
	return xs, true
}

// Texts returns the textual form of all values in b.
func (b Buffer) Texts() []string {
	ss := make([]string, len(b))
	for i, v := range b {
		ss[i] = v.String()
	}
	return ss
}

// Range returns the minimum and maximum of the numeric values in b.
// Non-numeric values are skipped; an empty range is [NaN, NaN].
func (b Buffer) Range() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, v := range b {
		x, ok := v.Float()
		if !ok || math.IsNaN(x) {
			continue
		}
		if !(min < x) {
			min = x
		}
		if !(max > x) {
			max = x
		}
	}
	return min, max
}
