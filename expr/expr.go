// Package expr holds the expression tree a chart is described with and
// the walker which dispatches property keys to typed setters.
//
// A tree is built from two node kinds: values (a single token) and lists.
// Property lists are lists which alternate between a key value and the
// value expression bound to it:
//
//	(bars data-x (1 2 3) data-y (4 5 6) color "#c00")
package expr

import (
	"strconv"
	"strings"
)

// Expr is a node of an expression tree.
type Expr struct {
	value  string
	list   []*Expr
	isList bool
}

// Value returns a value node.
func Value(s string) *Expr {
	return &Expr{value: s}
}

// List returns a list node holding items.
func List(items ...*Expr) *Expr {
	return &Expr{list: items, isList: true}
}

// Values returns a list of value nodes.
func Values(ss ...string) *Expr {
	l := List()
	for _, s := range ss {
		l.list = append(l.list, Value(s))
	}
	return l
}

// Props builds a property list from alternating keys and values. Values
// may be *Expr, string or []string.
func Props(kv ...interface{}) *Expr {
	l := List()
	for i, x := range kv {
		switch v := x.(type) {
		case *Expr:
			l.list = append(l.list, v)
		case string:
			l.list = append(l.list, Value(v))
		case []string:
			l.list = append(l.list, Values(v...))
		default:
			panic("expr.Props: unsupported item type at index " + strconv.Itoa(i))
		}
	}
	return l
}

// IsList reports whether e is a list node.
func (e *Expr) IsList() bool { return e != nil && e.isList }

// IsValue reports whether e is a value node.
func (e *Expr) IsValue() bool { return e != nil && !e.isList }

// String returns the value of a value node or the empty string.
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	if e.isList {
		return e.format()
	}
	return e.value
}

// Items returns the children of a list node. For a value node it returns
// the node itself so single values can be read like one element lists.
func (e *Expr) Items() []*Expr {
	if e == nil {
		return nil
	}
	if !e.isList {
		return []*Expr{e}
	}
	return e.list
}

// Len returns the number of items of e, see Items.
func (e *Expr) Len() int { return len(e.Items()) }

// Append adds items to the list e.
func (e *Expr) Append(items ...*Expr) *Expr {
	e.list = append(e.list, items...)
	return e
}

func (e *Expr) format() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, it := range e.list {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if it.isList {
			sb.WriteString(it.format())
		} else {
			sb.WriteString(it.value)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
