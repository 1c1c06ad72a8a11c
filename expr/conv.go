package expr

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Float64 reads a single number into dst.
func Float64(dst *float64) Handler {
	return func(e *Expr) error {
		x, err := toFloat(e)
		if err != nil {
			return err
		}
		*dst = x
		return nil
	}
}

// OptFloat64 reads a number into dst; the value "auto" stores NaN, which
// marks the number as unset.
func OptFloat64(dst *float64) Handler {
	return func(e *Expr) error {
		if e.IsValue() && isAuto(e.String()) {
			*dst = math.NaN()
			return nil
		}
		return Float64(dst)(e)
	}
}

// OptFloat64Pair reads a two element list into min and max, see OptFloat64.
func OptFloat64Pair(min, max *float64) Handler {
	return func(e *Expr) error {
		items := e.Items()
		if len(items) != 2 {
			return fmt.Errorf("expected two values, got %d", len(items))
		}
		if err := OptFloat64(min)(items[0]); err != nil {
			return err
		}
		return OptFloat64(max)(items[1])
	}
}

// Int reads an integer.
func Int(dst *int) Handler {
	return func(e *Expr) error {
		if !e.IsValue() {
			return fmt.Errorf("expected an integer, got %s", e.String())
		}
		n, err := strconv.Atoi(strings.TrimSpace(e.String()))
		if err != nil {
			return fmt.Errorf("invalid integer %q", e.String())
		}
		*dst = n
		return nil
	}
}

// Bool reads true/false, on/off or yes/no.
func Bool(dst *bool) Handler {
	return func(e *Expr) error {
		switch strings.ToLower(e.String()) {
		case "true", "on", "yes":
			*dst = true
		case "false", "off", "no":
			*dst = false
		default:
			return fmt.Errorf("invalid boolean %q", e.String())
		}
		return nil
	}
}

// String reads a single value.
func String(dst *string) Handler {
	return func(e *Expr) error {
		if !e.IsValue() {
			return fmt.Errorf("expected a value, got %s", e.String())
		}
		*dst = e.String()
		return nil
	}
}

// Strings reads a list of values (or a single value) into dst.
func Strings(dst *[]string) Handler {
	return func(e *Expr) error {
		var ss []string
		for _, it := range e.Items() {
			if !it.IsValue() {
				return fmt.Errorf("expected a value, got %s", it.String())
			}
			ss = append(ss, it.String())
		}
		*dst = ss
		return nil
	}
}

// EnumError is returned for values not in an enumeration.
type EnumError struct {
	Value   string
	Choices []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid value %q, expected one of %s",
		e.Value, strings.Join(e.Choices, ", "))
}

// Enum reads one of the keys of choices and stores the mapped value.
func Enum[T any](dst *T, choices map[string]T) Handler {
	return func(e *Expr) error {
		if e.IsValue() {
			if v, ok := choices[e.String()]; ok {
				*dst = v
				return nil
			}
		}
		names := make([]string, 0, len(choices))
		for name := range choices {
			names = append(names, name)
		}
		sort.Strings(names)
		return &EnumError{Value: e.String(), Choices: names}
	}
}

func toFloat(e *Expr) (float64, error) {
	if !e.IsValue() {
		return 0, fmt.Errorf("expected a number, got %s", e.String())
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(e.String()), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", e.String())
	}
	return x, nil
}

func isAuto(s string) bool {
	switch strings.ToLower(s) {
	case "auto", "-", "":
		return true
	}
	return false
}
