package plotgen

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"

	"github.com/vdobler/plotgen/expr"
)

// A ConfigError reports an invalid or missing configuration property.
type ConfigError struct {
	Element string // e.g. "bars"
	Key     string // offending property, may be empty
	Msg     string
	Err     error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	if e.Element != "" {
		b.WriteString(e.Element)
		b.WriteString(": ")
	}
	if e.Key != "" {
		fmt.Fprintf(&b, "key %q: ", e.Key)
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		fmt.Fprintf(&b, "%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("invalid configuration")
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ConfigErrorf returns a ConfigError for element with a formatted message.
func ConfigErrorf(element, key, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Element: element, Key: key, Msg: fmt.Sprintf(format, args...)}
}

// WrapConfig turns an error produced while walking the configuration of
// element into a *ConfigError. Errors which already are configuration,
// scale or render errors are returned unchanged.
func WrapConfig(element string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConfigError
	if xerrors.As(err, &ce) {
		return err
	}
	var se *ScaleError
	if xerrors.As(err, &se) {
		return err
	}
	// The outermost key names the offending property of element.
	var ke *expr.KeyError
	if xerrors.As(err, &ke) {
		return &ConfigError{Element: element, Key: ke.Key, Err: ke.Err}
	}
	var uk *expr.UnknownKeyError
	if xerrors.As(err, &uk) {
		return &ConfigError{Element: element, Key: uk.Key, Msg: "unknown key"}
	}
	return &ConfigError{Element: element, Err: err}
}

// A ScaleError reports a value which cannot be placed on a scale.
type ScaleError struct {
	Kind  ScaleKind
	Value string
	Msg   string
}

func (e *ScaleError) Error() string {
	return fmt.Sprintf("%s scale: value %q: %s", e.Kind, e.Value, e.Msg)
}

// A RenderError reports a failure of the drawing sink.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
