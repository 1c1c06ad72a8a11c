package render

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PathCall is a recorded DrawPath call.
type PathCall struct {
	Path   vg.Path
	Stroke draw.LineStyle
	Fill   color.Color
}

// Points returns the end points of the move and line components.
func (pc PathCall) Points() []vg.Point {
	var pts []vg.Point
	for _, comp := range pc.Path {
		if comp.Type == vg.MoveComp || comp.Type == vg.LineComp {
			pts = append(pts, comp.Pos)
		}
	}
	return pts
}

// Closed reports whether the path ends with a close component.
func (pc PathCall) Closed() bool {
	n := len(pc.Path)
	return n > 0 && pc.Path[n-1].Type == vg.CloseComp
}

// TextCall is a recorded DrawText call.
type TextCall struct {
	Text  string
	Point vg.Point
	Style draw.TextStyle
}

// Recorder is a plotgen.Sink which records all calls.
type Recorder struct {
	Paths []PathCall
	Texts []TextCall

	// FailText, if set, is returned by every DrawText call; the text is
	// not recorded.
	FailText error
}

func (r *Recorder) DrawPath(p vg.Path, stroke draw.LineStyle, fill color.Color) {
	r.Paths = append(r.Paths, PathCall{Path: p, Stroke: stroke, Fill: fill})
}

func (r *Recorder) DrawText(txt string, pt vg.Point, sty draw.TextStyle) error {
	if r.FailText != nil {
		return r.FailText
	}
	r.Texts = append(r.Texts, TextCall{Text: txt, Point: pt, Style: sty})
	return nil
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Paths, r.Texts = nil, nil
}
