package expr

import (
	"fmt"
)

// A Handler consumes the value expression bound to one key.
type Handler func(e *Expr) error

// Binding maps a property key to its handler.
type Binding struct {
	Key string
	Fn  Handler
}

// Bindings is an ordered key to handler table. If a key occurs more than
// once the first binding wins.
type Bindings []Binding

// Keys returns the keys of b in order.
func (b Bindings) Keys() []string {
	keys := make([]string, len(b))
	for i, bi := range b {
		keys[i] = bi.Key
	}
	return keys
}

func (b Bindings) index() map[string]Handler {
	m := make(map[string]Handler, len(b))
	for _, bi := range b {
		if _, ok := m[bi.Key]; !ok {
			m[bi.Key] = bi.Fn
		}
	}
	return m
}

// UnknownKeyError is returned by a strict walk for keys without binding.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Key)
}

// KeyError reports a failed handler together with its key.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// WalkMap walks the property list e and calls the bound handler for every
// key in the order the keys appear in e. Keys without a binding are an
// error if strict is set and silently skipped otherwise.
func WalkMap(e *Expr, bindings Bindings, strict bool) error {
	if e == nil {
		return nil
	}
	if !e.IsList() {
		return fmt.Errorf("expected a property list, got %q", e.String())
	}
	handlers := bindings.index()
	items := e.Items()
	for i := 0; i < len(items); i += 2 {
		k := items[i]
		if !k.IsValue() {
			return fmt.Errorf("expected a key, got %s", k.String())
		}
		key := k.String()
		if i+1 >= len(items) {
			return &KeyError{Key: key, Err: fmt.Errorf("missing value")}
		}
		fn, ok := handlers[key]
		if !ok {
			if strict {
				return &UnknownKeyError{Key: key}
			}
			continue
		}
		if err := fn(items[i+1]); err != nil {
			return &KeyError{Key: key, Err: err}
		}
	}
	return nil
}

// Each returns a handler which calls all fns with the same expression.
func Each(fns ...Handler) Handler {
	return func(e *Expr) error {
		for _, fn := range fns {
			if err := fn(e); err != nil {
				return err
			}
		}
		return nil
	}
}

// Ignore is a handler which accepts any value.
func Ignore(*Expr) error { return nil }
