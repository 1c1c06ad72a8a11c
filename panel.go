package plotgen

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Geometry helpers in device space. Lengths are pixels, the origin is the
// bottom left corner and y grows upwards.

// Map maps the fractions (fx,fy) of the axes to a point inside r.
// Fraction 0 is the left or bottom edge, 1 the right or top edge.
func Map(r vg.Rectangle, fx, fy float64) vg.Point {
	s := r.Size()
	return vg.Point{
		X: r.Min.X + vg.Length(fx)*s.X,
		Y: r.Min.Y + vg.Length(fy)*s.Y,
	}
}

// Inset shrinks r by the given amounts. Negative sizes collapse to 0.
func Inset(r vg.Rectangle, top, right, bottom, left vg.Length) vg.Rectangle {
	out := vg.Rectangle{
		Min: vg.Point{X: r.Min.X + left, Y: r.Min.Y + bottom},
		Max: vg.Point{X: r.Max.X - right, Y: r.Max.Y - top},
	}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Center returns the center of r.
func Center(r vg.Rectangle) vg.Point {
	return vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// CanonicRectangle returns a rectangle with the same area as r but
// Min <= Max in both directions.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Polyline returns an open path through pts.
func Polyline(pts ...vg.Point) vg.Path {
	var p vg.Path
	for i, pt := range pts {
		if i == 0 {
			p.Move(pt)
		} else {
			p.Line(pt)
		}
	}
	return p
}

// Polygon returns the closed path through pts.
func Polygon(pts ...vg.Point) vg.Path {
	p := Polyline(pts...)
	if len(p) > 0 {
		p.Close()
	}
	return p
}

// Circle returns the closed circle of radius r around c.
func Circle(c vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: c.X + r, Y: c.Y})
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	return p
}
