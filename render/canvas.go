// Package render implements drawing sinks: Canvas renders into PNG or
// SVG using gonum's vg packages, Recorder keeps the drawing calls for
// inspection in tests.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/plotgen"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	SVG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("unknown output format %q", s)
}

// FormatFromName derives the format from the extension of name.
func FormatFromName(name string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return 0, fmt.Errorf("cannot derive output format from %q", name)
	}
	return ParseFormat(ext)
}

// Canvas is a plotgen.Sink drawing onto a vg canvas. Device pixels are
// converted to vg points at the canvas resolution.
type Canvas struct {
	dpi float64
	out vg.CanvasWriterTo
	dc  draw.Canvas
}

// New returns a canvas of width x height pixels. A non-nil bg fills the
// whole canvas. PNG output needs a whole number dpi.
func New(format Format, width, height vg.Length, dpi float64, bg color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %gx%g", width, height)
	}
	if dpi <= 0 {
		dpi = 96
	}
	c := &Canvas{dpi: dpi}
	w, h := c.length(width), c.length(height)

	switch format {
	case PNG:
		if dpi != math.Trunc(dpi) {
			return nil, fmt.Errorf("png output needs an integer dpi, got %g", dpi)
		}
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(int(dpi)))
		c.out = vgimg.PngCanvas{Canvas: img}
	case SVG:
		c.out = vgsvg.New(w, h)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	c.dc = draw.New(c.out)

	if bg != nil {
		area := vg.Rectangle{Max: vg.Point{X: width, Y: height}}
		c.DrawPath(area.Path(), draw.LineStyle{}, bg)
	}
	return c, nil
}

func (c *Canvas) length(px vg.Length) vg.Length {
	return px * 72 / vg.Length(c.dpi)
}

func (c *Canvas) point(p vg.Point) vg.Point {
	return vg.Point{X: c.length(p.X), Y: c.length(p.Y)}
}

// path converts p from pixels to points.
func (c *Canvas) path(p vg.Path) vg.Path {
	vp := make(vg.Path, len(p))
	for i, comp := range p {
		comp.Pos = c.point(comp.Pos)
		comp.Radius = c.length(comp.Radius)
		if len(comp.Control) > 0 {
			ctrl := make([]vg.Point, len(comp.Control))
			for j, q := range comp.Control {
				ctrl[j] = c.point(q)
			}
			comp.Control = ctrl
		}
		vp[i] = comp
	}
	return vp
}

// DrawPath fills and strokes p.
func (c *Canvas) DrawPath(p vg.Path, stroke draw.LineStyle, fill color.Color) {
	if len(p) == 0 {
		return
	}
	vp := c.path(p)
	if fill != nil {
		c.dc.SetColor(fill)
		c.dc.Fill(vp)
	}
	if plotgen.Stroked(stroke) {
		dashes := make([]vg.Length, len(stroke.Dashes))
		for i, d := range stroke.Dashes {
			dashes[i] = c.length(d)
		}
		stroke.Width = c.length(stroke.Width)
		stroke.Dashes = dashes
		stroke.DashOffs = c.length(stroke.DashOffs)
		c.dc.SetLineStyle(stroke)
		c.dc.Stroke(vp)
	}
}

// DrawText draws txt anchored at pt. The font size of sty is in pixels.
func (c *Canvas) DrawText(txt string, pt vg.Point, sty draw.TextStyle) error {
	if sty.Font.Font() == nil {
		return fmt.Errorf("no font for text %q", txt)
	}
	if sty.Color == nil {
		sty.Color = color.Black
	}
	sty.Font.Size = c.length(sty.Font.Size)
	c.dc.FillText(sty, c.point(pt), txt)
	return nil
}

// WriteTo writes the rendered image to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	return c.out.WriteTo(w)
}
