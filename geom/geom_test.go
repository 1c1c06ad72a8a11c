package geom

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		k, ok := Lookup(name)
		if !ok || k.String() != name {
			t.Errorf("Lookup(%q) = %v, %t", name, k, ok)
		}
	}
	if _, ok := Lookup("pie"); ok {
		t.Errorf("Lookup(pie) succeeded")
	}
}

// Every kind rejects unknown keys and mismatched data.
func TestConfigErrors(t *testing.T) {
	for _, k := range []Kind{Areas, Bars, Errorbars, Labels, Lines, Points, Polygons, Rectangles, Vectors} {
		t.Run(k.String(), func(t *testing.T) {
			env, _ := testEnv()
			var ce *plotgen.ConfigError

			err := k.Autorange(env, plotgen.NewPlotConfig(), expr.Props("bogus", "1"))
			if !xerrors.As(err, &ce) || ce.Key != "bogus" {
				t.Errorf("unknown key: got %v", err)
			}

			err = k.Autorange(env, plotgen.NewPlotConfig(), expr.Props(
				"data-x", expr.Values("1", "2", "3"),
				"data-y", expr.Values("1", "2"),
			))
			if !xerrors.As(err, &ce) {
				t.Errorf("length mismatch: got %v", err)
			}
		})
	}
}

func TestLines(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "2"),
		"data-y", expr.Values("0", "10", "0"),
		"color", "#ff0000",
	)
	if err := evaluate(Lines, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(rec.Paths))
	}
	pc := rec.Paths[0]
	if pc.Closed() {
		t.Errorf("line is closed")
	}
	want := []vg.Point{{0, 0}, {100, 100}, {200, 0}}
	if diff := cmp.Diff(want, pc.Points(), approx); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
	if pc.Fill != nil {
		t.Errorf("line is filled")
	}
	if pc.Stroke.Color != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("stroke color %v", pc.Stroke.Color)
	}
	if w := pc.Stroke.Width; w < 2.66 || w > 2.67 {
		t.Errorf("default stroke width %g, want 2pt", w)
	}
}

func TestAreas(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "2"),
		"data-y", expr.Values("2", "4", "2"),
		"limit-y", expr.Values("0", "4"),
	)
	if err := evaluate(Areas, env, plot, e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Paths) != 1 || !rec.Paths[0].Closed() {
		t.Fatalf("want one closed path, got %+v", rec.Paths)
	}
	want := []vg.Point{{0, 50}, {100, 100}, {200, 50}, {200, 0}, {100, 0}, {0, 0}}
	if diff := cmp.Diff(want, rec.Paths[0].Points(), approx); diff != "" {
		t.Errorf("outline (-want +got):\n%s", diff)
	}
}

func TestPoints(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "2"),
		"data-y", expr.Values("0", "1", "2"),
		"colors", expr.Values("red", "blue"),
		"sizes", expr.Values("4px", "8px"),
		"shape", "square",
	)
	if err := evaluate(Points, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Paths) != 3 {
		t.Fatalf("got %d marks, want 3", len(rec.Paths))
	}
	wantWidth := []vg.Length{4, 8, 4}
	for i, pc := range rec.Paths {
		pts := pc.Points()
		if w := pts[1].X - pts[0].X; w != wantWidth[i] {
			t.Errorf("mark %d width %g, want %g", i, w, wantWidth[i])
		}
	}
	if rec.Paths[0].Fill != rec.Paths[2].Fill || rec.Paths[0].Fill == rec.Paths[1].Fill {
		t.Errorf("colors not cycled: %v", rec.Paths)
	}
}

func TestPointsPercentSize(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "1"),
		"size", "10%",
		"labels", expr.Values("a", "b"),
		"label-padding", "0px",
	)
	plot := plotgen.NewPlotConfig()
	plot.Margins[plotgen.Right] = measure.FromPx(100)
	if err := evaluate(Points, env, plot, e); err != nil {
		t.Fatal(err)
	}
	// The plot area is 100px wide: the diameter is 10px.
	for i, pc := range rec.Paths {
		if len(pc.Path) != 3 || pc.Path[1].Type != vg.ArcComp || pc.Path[1].Radius != 5 {
			t.Errorf("mark %d = %v, want a circle of radius 5", i, pc.Path)
		}
	}
	if got := rec.Texts[1].Point; got != (vg.Point{X: 100, Y: 105}) {
		t.Errorf("label above mark at %v", got)
	}
}

func TestLabels(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "1"),
		"labels", expr.Values("lo", "hi"),
		"offset-x", "3px",
		"align-x", "left",
	)
	if err := evaluate(Labels, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Texts) != 2 {
		t.Fatalf("got %d texts", len(rec.Texts))
	}
	if got := rec.Texts[1]; got.Text != "hi" || got.Point != (vg.Point{X: 203, Y: 100}) || got.Style.XAlign != draw.XLeft {
		t.Errorf("second label %+v", got)
	}

	err := Labels.Autorange(env, plotgen.NewPlotConfig(), expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "1"),
		"labels", expr.Values("only"),
	))
	var ce *plotgen.ConfigError
	if !xerrors.As(err, &ce) || ce.Key != "labels" {
		t.Errorf("got %v, want ConfigError for labels", err)
	}
}

func TestErrorbars(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	e := expr.Props(
		"data-x", expr.Values("1", "2"),
		"data-y", expr.Values("5", "5"),
		"data-y-low", expr.Values("4", "3"),
		"data-y-high", expr.Values("6", "7"),
		"bar-width", "6px",
	)
	if err := evaluate(Errorbars, env, plot, e); err != nil {
		t.Fatal(err)
	}
	if got := plot.ScaleY.Data; got.Min != 3 || got.Max != 7 {
		t.Errorf("y data range %v, want [3,7]", got)
	}
	if len(rec.Paths) != 2 {
		t.Fatalf("got %d whiskers, want 2", len(rec.Paths))
	}
	pts := rec.Paths[1].Points()
	// whisker 3..7 over the full height, caps 6px wide at x=200.
	want := []vg.Point{{200, 0}, {200, 100}, {197, 0}, {203, 0}, {197, 100}, {203, 100}}
	if diff := cmp.Diff(want, pts, approx); diff != "" {
		t.Errorf("whisker (-want +got):\n%s", diff)
	}
}

func TestRectangles(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "1"),
		"size", "10px",
		"heights", expr.Values("4px"),
	)
	if err := evaluate(Rectangles, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	want := []vg.Point{{195, 98}, {205, 98}, {205, 102}, {195, 102}}
	if diff := cmp.Diff(want, rec.Paths[1].Points(), approx); diff != "" {
		t.Errorf("rectangle (-want +got):\n%s", diff)
	}
}

func TestPolygons(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "0"),
		"data-y", expr.Values("0", "0", "1"),
		"fill", "none",
		"stroke-width", "1px",
	)
	if err := evaluate(Polygons, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Paths) != 1 || !rec.Paths[0].Closed() || rec.Paths[0].Fill != nil {
		t.Errorf("unexpected polygon %+v", rec.Paths)
	}

	err := Polygons.Autorange(env, plotgen.NewPlotConfig(), expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "1"),
	))
	var ce *plotgen.ConfigError
	if !xerrors.As(err, &ce) {
		t.Errorf("two point polygon: got %v", err)
	}
}

func TestVectors(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("0", "0"),
		"data-dx", expr.Values("1", "3"),
		"data-dy", expr.Values("1", "-1"),
	)
	if err := evaluate(Vectors, env, plot, e); err != nil {
		t.Fatal(err)
	}
	if got := plot.ScaleX.Data; got.Min != 0 || got.Max != 4 {
		t.Errorf("x range %v, want [0,4]", got)
	}
	if got := plot.ScaleY.Data; got.Min != -1 || got.Max != 1 {
		t.Errorf("y range %v, want [-1,1]", got)
	}
	// one shaft and one head per vector
	if len(rec.Paths) != 4 {
		t.Fatalf("got %d paths, want 4", len(rec.Paths))
	}
	head := rec.Paths[1]
	if !head.Closed() || len(head.Points()) != 3 {
		t.Errorf("head %+v", head.Path)
	}
}

func TestScaleErrorPropagates(t *testing.T) {
	for i, k := range []Kind{Bars, Lines, Points} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			env, rec := testEnv()
			err := k.Autorange(env, plotgen.NewPlotConfig(), expr.Props(
				"data-x", expr.Values("1", "x"),
				"data-y", expr.Values("1", "2"),
			))
			var se *plotgen.ScaleError
			if !xerrors.As(err, &se) {
				t.Errorf("got %v, want ScaleError", err)
			}
			if len(rec.Paths) != 0 {
				t.Errorf("autorange drew")
			}
		})
	}
}
