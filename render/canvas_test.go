package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
)

func TestFormatFromName(t *testing.T) {
	for i, tc := range []struct {
		name string
		want Format
		ok   bool
	}{
		{"chart.png", PNG, true},
		{"out/chart.SVG", SVG, true},
		{"chart", 0, false},
		{"chart.pdf", 0, false},
	} {
		got, err := FormatFromName(tc.name)
		if (err == nil) != tc.ok || (tc.ok && got != tc.want) {
			t.Errorf("%d: FormatFromName(%q) = %s, %v", i, tc.name, got, err)
		}
	}
}

func drawSample(t *testing.T, c *Canvas) {
	t.Helper()
	r := vg.Rectangle{Min: vg.Point{X: 10, Y: 10}, Max: vg.Point{X: 60, Y: 40}}
	c.DrawPath(r.Path(),
		draw.LineStyle{Width: 1, Color: color.Black, Dashes: []vg.Length{4, 2}},
		color.NRGBA{0x46, 0x82, 0xb4, 0xff})
	c.DrawPath(plotgen.Circle(plotgen.Center(r), 5), draw.LineStyle{Width: 1, Color: color.Black}, nil)
	font, err := plotgen.MakeFont(plotgen.DefaultFont, 12)
	if err != nil {
		t.Fatal(err)
	}
	sty := draw.TextStyle{Font: font, XAlign: draw.XCenter, YAlign: draw.YCenter}
	if err := c.DrawText("label", plotgen.Center(r), sty); err != nil {
		t.Fatal(err)
	}
}

func TestSVG(t *testing.T) {
	c, err := New(SVG, 100, 50, 96, color.White)
	if err != nil {
		t.Fatal(err)
	}
	drawSample(t, c)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<svg", "label"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestPNG(t *testing.T) {
	c, err := New(PNG, 100, 50, 96, color.White)
	if err != nil {
		t.Fatal(err)
	}
	drawSample(t, c)

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("image is %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}

func TestMissingFont(t *testing.T) {
	c, err := New(SVG, 100, 50, 96, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DrawText("x", vg.Point{}, draw.TextStyle{}); err == nil {
		t.Error("expected an error for a text style without font")
	}
}

func TestInvalidSize(t *testing.T) {
	if _, err := New(PNG, 0, 10, 96, nil); err == nil {
		t.Error("expected an error for zero width")
	}
}

func TestFractionalDPI(t *testing.T) {
	if _, err := New(PNG, 100, 50, 96.5, nil); err == nil {
		t.Error("png accepted a fractional dpi")
	}
	if _, err := New(PNG, 100, 50, 150, nil); err != nil {
		t.Errorf("png rejected 150 dpi: %v", err)
	}
	if _, err := New(SVG, 100, 50, 96.5, nil); err != nil {
		t.Errorf("svg rejected a fractional dpi: %v", err)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.DrawPath(vg.Rectangle{Max: vg.Point{X: 1, Y: 1}}.Path(), draw.LineStyle{}, nil)
	if err := r.DrawText("a", vg.Point{}, draw.TextStyle{}); err != nil {
		t.Fatal(err)
	}
	if len(r.Paths) != 1 || len(r.Texts) != 1 {
		t.Fatalf("recorded %d paths, %d texts", len(r.Paths), len(r.Texts))
	}
	if pc := r.Paths[0]; !pc.Closed() || len(pc.Points()) != 4 {
		t.Errorf("rectangle recorded as %v", pc.Path)
	}
	r.Reset()
	if len(r.Paths) != 0 || len(r.Texts) != 0 {
		t.Error("Reset kept calls")
	}
}
