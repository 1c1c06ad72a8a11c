package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/render"
)

var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmp.Comparer(func(a, b vg.Length) bool { return math.Abs(float64(a-b)) <= 1e-9 }),
}

func testEnv() (*plotgen.Env, *render.Recorder) {
	rec := &render.Recorder{}
	return &plotgen.Env{Layer: plotgen.NewLayer(200, 100, 96), Sink: rec}, rec
}

// evaluate runs both phases of k on a fresh plot.
func evaluate(k Kind, env *plotgen.Env, plot *plotgen.PlotConfig, e *expr.Expr) error {
	if err := k.Autorange(env, plot, e); err != nil {
		return err
	}
	return k.Draw(env, plot, e)
}

func TestBarsVertical(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	plot.ScaleY.FixMin(-2)

	e := expr.Props(
		"data-x", expr.Values("0", "1", "2"),
		"data-y", expr.Values("5", "3", "8"),
		"width", "10px",
	)
	if err := evaluate(Bars, env, plot, e); err != nil {
		t.Fatal(err)
	}
	if len(rec.Paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(rec.Paths))
	}

	// x domain [0,2] over 200px, y domain [-2,8] over 100px: zero at 20px.
	want := [][]vg.Point{
		{{-5, 20}, {-5, 70}, {5, 70}, {5, 20}},
		{{95, 20}, {95, 50}, {105, 50}, {105, 20}},
		{{195, 20}, {195, 100}, {205, 100}, {205, 20}},
	}
	for i, pc := range rec.Paths {
		if !pc.Closed() {
			t.Errorf("bar %d not closed", i)
		}
		if diff := cmp.Diff(want[i], pc.Points(), approx); diff != "" {
			t.Errorf("bar %d (-want +got):\n%s", i, diff)
		}
	}
	if rec.Paths[0].Fill != env.Layer.Foreground {
		t.Errorf("default fill = %v, want foreground", rec.Paths[0].Fill)
	}
}

func TestBarsBaselineClamped(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("5", "10"),
	)
	if err := evaluate(Bars, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	// Domain [5,10] does not contain 0: bars start at the bottom edge.
	for i, pc := range rec.Paths {
		if y := pc.Points()[0].Y; y != 0 {
			t.Errorf("bar %d starts at y=%g, want 0", i, y)
		}
	}
	// Default thickness is 10pt.
	pts := rec.Paths[0].Points()
	if w := pts[2].X - pts[0].X; w < 13.33 || w > 13.34 {
		t.Errorf("default width %g, want 10pt at 96dpi", w)
	}
}

func TestBarsLengthMismatch(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "2"),
		"data-y", expr.Values("5", "3"),
	)
	for _, phase := range []func(*plotgen.Env, *plotgen.PlotConfig, *expr.Expr) error{
		Bars.Autorange, Bars.Draw,
	} {
		err := phase(env, plot, e)
		var ce *plotgen.ConfigError
		if !xerrors.As(err, &ce) || ce.Key != "data-y" {
			t.Errorf("got %v, want ConfigError for data-y", err)
		}
	}
	if len(rec.Paths) != 0 {
		t.Errorf("%d paths drawn despite error", len(rec.Paths))
	}

	lowErr := Bars.Autorange(env, plot, expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("5", "3"),
		"data-y-low", expr.Values("1"),
	))
	var ce *plotgen.ConfigError
	if !xerrors.As(lowErr, &ce) || ce.Key != "data-y-low" {
		t.Errorf("got %v, want ConfigError for data-y-low", lowErr)
	}
}

func TestBarsCyclicOffsets(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1", "2", "3", "4"),
		"data-y", expr.Values("1", "1", "1", "1", "1"),
		"width", "4px",
		"offsets", expr.Values("3px", "-3px"),
		"labels", expr.Values("a", "b", "c"),
	)
	if err := evaluate(Bars, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	var centers []vg.Length
	for _, pc := range rec.Paths {
		pts := pc.Points()
		centers = append(centers, (pts[0].X+pts[2].X)/2)
	}
	want := []vg.Length{3, 47, 103, 147, 203}
	if diff := cmp.Diff(want, centers, approx); diff != "" {
		t.Errorf("centers (-want +got):\n%s", diff)
	}

	// Fewer labels than bars: one text per label.
	if len(rec.Texts) != 3 {
		t.Fatalf("got %d labels, want 3", len(rec.Texts))
	}
	for i, tc := range rec.Texts {
		if tc.Point.X != centers[i] {
			t.Errorf("label %d at x=%g, want %g", i, tc.Point.X, centers[i])
		}
		if tc.Style.XAlign != draw.XCenter || tc.Style.YAlign != draw.YBottom {
			t.Errorf("label %d aligned %v/%v", i, tc.Style.XAlign, tc.Style.YAlign)
		}
	}
}

func TestBarsHorizontal(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"direction", "horizontal",
		"data-x", expr.Values("10", "20"),
		"data-y", expr.Values("0", "1"),
		"limit-x", expr.Values("0", "20"),
		"width", "10px",
		"labels", expr.Values("ten", "twenty"),
		"label-padding", "5px",
	)
	plot := plotgen.NewPlotConfig()
	if err := evaluate(Bars, env, plot, e); err != nil {
		t.Fatal(err)
	}
	want := []vg.Point{{0, -5}, {100, -5}, {100, 5}, {0, 5}}
	if diff := cmp.Diff(want, rec.Paths[0].Points(), approx); diff != "" {
		t.Errorf("first bar (-want +got):\n%s", diff)
	}
	if got := rec.Texts[1].Point; got != (vg.Point{X: 205, Y: 100}) {
		t.Errorf("second label at %v", got)
	}
	if sty := rec.Texts[0].Style; sty.XAlign != draw.XLeft || sty.YAlign != draw.YCenter {
		t.Errorf("horizontal labels aligned %v/%v", sty.XAlign, sty.YAlign)
	}
	// The limit applies to this element only.
	if plot.ScaleX.Min == 0 {
		t.Errorf("element limit leaked into plot scale")
	}
}

func TestBarsTextFailure(t *testing.T) {
	env, rec := testEnv()
	fail := errors.New("no such font")
	rec.FailText = fail
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("1", "2"),
		"labels", expr.Values("a", "b"),
	)
	err := evaluate(Bars, env, plotgen.NewPlotConfig(), e)
	var re *plotgen.RenderError
	if !xerrors.As(err, &re) || !xerrors.Is(err, fail) {
		t.Fatalf("got %v, want RenderError wrapping %v", err, fail)
	}
}

func TestBarsUnknownKey(t *testing.T) {
	env, _ := testEnv()
	err := Bars.Autorange(env, plotgen.NewPlotConfig(), expr.Props("data-z", "1"))
	var ce *plotgen.ConfigError
	if !xerrors.As(err, &ce) || ce.Key != "data-z" || ce.Element != "bars" {
		t.Errorf("got %v, want ConfigError for data-z", err)
	}
}

func TestBarsCategorical(t *testing.T) {
	env, rec := testEnv()
	plot := plotgen.NewPlotConfig()
	plot.ScaleX.Kind = plotgen.Categorical
	e := expr.Props(
		"data-x", expr.Values("a", "b"),
		"data-y", expr.Values("1", "2"),
		"width", "10px",
	)
	if err := evaluate(Bars, env, plot, e); err != nil {
		t.Fatal(err)
	}
	// Two slots over 200px: centres at 50 and 150.
	for i, want := range []float64{50, 150} {
		pts := rec.Paths[i].Points()
		if c := (pts[0].X + pts[2].X) / 2; c != vg.Length(want) {
			t.Errorf("bar %d centred at %g, want %g", i, c, want)
		}
	}
}

func TestBarsDefaultLabelPadding(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"data-x", expr.Values("0", "1"),
		"data-y", expr.Values("5", "10"),
		"limit-y", expr.Values("0", "10"),
		"labels", expr.Values("five", "ten"),
		"label-font-size", "10pt",
	)
	if err := evaluate(Bars, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	// 10pt at 96dpi are 13.33px, the default padding is 0.6 of that.
	size := vg.Length(10 * 96.0 / 72)
	for i, tc := range rec.Texts {
		top := rec.Paths[i].Points()[1].Y
		if diff := cmp.Diff(top+0.6*size, tc.Point.Y, approx); diff != "" {
			t.Errorf("label %d y (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(size, tc.Style.Font.Size, approx); diff != "" {
			t.Errorf("label %d font size (-want +got):\n%s", i, diff)
		}
	}
	if got := rec.Texts[0].Point.Y; math.Abs(float64(got)-58) > 1e-9 {
		t.Errorf("first label at y=%g, want 58", got)
	}
}

// barThickness returns the extent of the first bar across its direction.
func barThickness(pc render.PathCall, dir string) vg.Length {
	pts := pc.Points()
	if dir == "horizontal" {
		return pts[2].Y - pts[0].Y
	}
	return pts[2].X - pts[0].X
}

func TestBarsPercentWidth(t *testing.T) {
	// The layer is 200x100: percentages refer to the plot width for
	// vertical bars and to its height for horizontal ones.
	for _, tc := range []struct {
		dir   string
		key   string
		width interface{}
		want  vg.Length
	}{
		{"vertical", "width", "10%", 20},
		{"vertical", "widths", expr.Values("10%"), 20},
		{"horizontal", "width", "10%", 10},
		{"horizontal", "widths", expr.Values("10%"), 10},
		{"horizontal", "width", "6px", 6},
	} {
		env, rec := testEnv()
		e := expr.Props(
			"direction", tc.dir,
			"data-x", expr.Values("1", "2"),
			"data-y", expr.Values("1", "2"),
			tc.key, tc.width,
		)
		if err := evaluate(Bars, env, plotgen.NewPlotConfig(), e); err != nil {
			t.Fatal(err)
		}
		if got := barThickness(rec.Paths[0], tc.dir); math.Abs(float64(got-tc.want)) > 1e-9 {
			t.Errorf("%s %s=%v: thickness %g, want %g", tc.dir, tc.key, tc.width, got, tc.want)
		}
	}
}

func TestBarsPercentOffset(t *testing.T) {
	env, rec := testEnv()
	e := expr.Props(
		"direction", "horizontal",
		"data-x", expr.Values("1", "2"),
		"data-y", expr.Values("0", "1"),
		"width", "2px",
		"offset", "10%",
	)
	if err := evaluate(Bars, env, plotgen.NewPlotConfig(), e); err != nil {
		t.Fatal(err)
	}
	// 10% of the 100px plot height, subtracted from y=0.
	pts := rec.Paths[0].Points()
	if c := (pts[0].Y + pts[2].Y) / 2; math.Abs(float64(c+10)) > 1e-9 {
		t.Errorf("bar centred at y=%g, want -10", c)
	}
}
