package plotgen

import (
	"image/color"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen/measure"
)

// ----------------------------------------------------------------------------
// Layer

// A Layer describes the drawing surface: its size, resolution and the
// typographic defaults every element inherits. All lengths are device
// pixels.
type Layer struct {
	Width, Height vg.Length
	DPI           float64
	FontSize      vg.Length // 1em
	RemSize       vg.Length // 1rem
	Font          vg.Font   // sized to FontSize
	Foreground    color.Color
	Background    color.Color
}

// DefaultFontSize is the default font size in points.
const DefaultFontSize = 11

// NewLayer returns a layer of the given size in pixels. A non-positive
// dpi defaults to 96.
func NewLayer(width, height vg.Length, dpi float64) Layer {
	if dpi <= 0 {
		dpi = 96
	}
	fs := vg.Length(measure.PtToPx(DefaultFontSize, dpi))
	font, err := MakeFont(DefaultFont, fs)
	if err != nil {
		panic(err)
	}
	return Layer{
		Width:      width,
		Height:     height,
		DPI:        dpi,
		FontSize:   fs,
		RemSize:    fs,
		Font:       font,
		Foreground: color.Black,
		Background: color.White,
	}
}

// SetFont switches the layer to the font family and size in pixels.
func (l *Layer) SetFont(family string, size vg.Length) error {
	font, err := MakeFont(family, size)
	if err != nil {
		return err
	}
	l.Font, l.FontSize, l.RemSize = font, size, size
	return nil
}

// Resolve converts m to pixels. Percentages refer to span.
func (l *Layer) Resolve(m measure.Measure, span vg.Length) vg.Length {
	em := l.FontSize
	if m.Unit == measure.Rem {
		em = l.RemSize
	}
	return vg.Length(m.Resolve(l.DPI, float64(em), float64(span)))
}

// Pt converts pt points to pixels.
func (l *Layer) Pt(pt float64) vg.Length {
	return vg.Length(measure.PtToPx(pt, l.DPI))
}

// Rect returns the full extent of l.
func (l *Layer) Rect() vg.Rectangle {
	return vg.Rectangle{Max: vg.Point{X: l.Width, Y: l.Height}}
}

// TextStyle returns the default text style of l.
func (l *Layer) TextStyle() draw.TextStyle {
	return draw.TextStyle{Font: l.Font, Color: l.Foreground}
}

// ----------------------------------------------------------------------------
// Sink and Env

// A Sink receives drawing operations in device space.
type Sink interface {
	// DrawPath fills p with a non-nil fill and strokes it with a
	// visible stroke.
	DrawPath(p vg.Path, stroke draw.LineStyle, fill color.Color)

	// DrawText draws txt anchored at pt, aligned and rotated as sty says.
	DrawText(txt string, pt vg.Point, sty draw.TextStyle) error
}

// Env bundles what every element needs for drawing.
type Env struct {
	Layer  Layer
	Sink   Sink
	Logger *zap.Logger
}

// Log returns the logger of e which is never nil.
func (e *Env) Log() *zap.Logger {
	if e == nil || e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// DrawText draws txt on the sink of e and wraps failures in a RenderError.
func (e *Env) DrawText(txt string, pt vg.Point, sty draw.TextStyle) error {
	if err := e.Sink.DrawText(txt, pt, sty); err != nil {
		return &RenderError{Op: "text", Err: err}
	}
	return nil
}
