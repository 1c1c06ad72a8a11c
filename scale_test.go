package plotgen

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/xerrors"

	"github.com/vdobler/plotgen/data"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var domainTests = []struct {
	min, max float64 // explicit
	padding  float64
	data     []float64
	want     Interval
}{
	{nan, nan, 0, nil, Interval{0, 1}},
	{nan, nan, 0, []float64{2, 7}, Interval{2, 7}},
	{nan, nan, 0.1, []float64{0, 10}, Interval{-1, 11}},
	{0, nan, 0.1, []float64{2, 12}, Interval{0, 13}},
	{-5, 5, 0.5, []float64{2, 12}, Interval{-5, 5}},
	{nan, nan, 0, []float64{3, 3}, Interval{2, 4}},
	{nan, 4, 0, nil, Interval{3, 4}},
}

func TestScaleDomain(t *testing.T) {
	for i, tc := range domainTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewScale()
			s.Min, s.Max, s.Padding = tc.min, tc.max, tc.padding
			if err := s.Fit(data.Numbers(tc.data...)); err != nil {
				t.Fatal(err)
			}
			if got := s.Domain(); !got.Equal(tc.want) {
				t.Errorf("Domain() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFitKeepsExplicitBounds(t *testing.T) {
	s := NewScale()
	s.FixMin(0)
	s.FixMax(10)
	for _, b := range []data.Buffer{data.Numbers(-100, 5), data.Numbers(300)} {
		if err := s.Fit(b); err != nil {
			t.Fatal(err)
		}
	}
	if s.Min != 0 || s.Max != 10 {
		t.Errorf("explicit bounds changed to [%g,%g]", s.Min, s.Max)
	}
	if got := s.Translate(5); got != 0.5 {
		t.Errorf("Translate(5) = %g, want 0.5", got)
	}
	if got := s.Translate(20); got != 2 {
		t.Errorf("Translate(20) = %g, want 2 (unclamped)", got)
	}
}

func TestPaddedEdges(t *testing.T) {
	s := NewScale()
	s.Padding = 0.25
	if err := s.Fit(data.Numbers(0, 4, 2)); err != nil {
		t.Fatal(err)
	}
	// Domain is [-1, 5]; data min and max sit p/(1+2p) inside the edges.
	got := []float64{s.Translate(0), s.Translate(4)}
	want := []float64{1.0 / 6, 5.0 / 6}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("padded translation mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoricalOrder(t *testing.T) {
	s := NewScale()
	s.Kind = Categorical
	for _, b := range []data.Buffer{data.Strings("a", "b"), data.Strings("b", "c")} {
		if err := s.Fit(b); err != nil {
			t.Fatal(err)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, s.Categories); diff != "" {
		t.Fatalf("categories (-want +got):\n%s", diff)
	}

	got, err := s.TranslateBatch(data.Strings("c", "a", "b"))
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{5.0 / 6, 1.0 / 6, 0.5}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("TranslateBatch (-want +got):\n%s", diff)
	}
	if f := s.Translate(1); math.Abs(f-0.5) > 1e-12 {
		t.Errorf("Translate(slot 1) = %g, want 0.5", f)
	}

	_, err = s.TranslateValue(data.Text("zzz"))
	var se *ScaleError
	if !xerrors.As(err, &se) {
		t.Errorf("unknown category: got %v, want ScaleError", err)
	}
}

func TestScaleErrors(t *testing.T) {
	lin := NewScale()
	err := lin.Fit(data.Strings("1", "two"))
	var se *ScaleError
	if !xerrors.As(err, &se) || se.Value != "two" {
		t.Errorf("linear Fit(two) = %v, want ScaleError", err)
	}

	log := NewScale()
	log.Kind = Logarithmic
	if err := log.Fit(data.Numbers(10, -1)); !xerrors.As(err, &se) {
		t.Errorf("log Fit(-1) = %v, want ScaleError", err)
	}
}

func TestLogScale(t *testing.T) {
	s := NewScale()
	s.Kind = Logarithmic
	if err := s.Fit(data.Numbers(1, 10, 100)); err != nil {
		t.Fatal(err)
	}
	got, err := s.TranslateBatch(data.Numbers(1, 10, 100))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0, 0.5, 1}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("log translation (-want +got):\n%s", diff)
	}

	empty := NewScale()
	empty.Kind = Logarithmic
	if d := empty.Domain(); math.Abs(d.Min-1) > 1e-12 || math.Abs(d.Max-10) > 1e-9 {
		t.Errorf("empty log domain = %v, want [1,10]", d)
	}
}

func TestTimeScale(t *testing.T) {
	s := NewScale()
	s.Kind = Time
	b := data.Strings("2020-01-01", "2020-01-03")
	if err := s.Fit(b); err != nil {
		t.Fatal(err)
	}
	f, err := s.TranslateValue(data.Text("2020-01-02"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(f-0.5) > 1e-12 {
		t.Errorf("midpoint = %g, want 0.5", f)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewScale()
	s.Kind = Categorical
	s.Fit(data.Strings("a"))
	c := s.Clone()
	c.Fit(data.Strings("b"))
	if len(s.Categories) != 1 {
		t.Errorf("clone shares categories: %q", s.Categories)
	}
}

func TestTicks(t *testing.T) {
	s := NewScale()
	s.Fit(data.Numbers(0, 10))
	var major []float64
	for _, tk := range s.Ticks(6, "") {
		if !tk.Minor {
			major = append(major, tk.Value)
		}
	}
	if len(major) < 2 || len(major) > 6 {
		t.Fatalf("got %d major ticks: %v", len(major), major)
	}
	if major[0] != 0 || major[len(major)-1] != 10 {
		t.Errorf("major ticks %v should span [0,10]", major)
	}

	cat := NewScale()
	cat.Kind = Categorical
	cat.Fit(data.Strings("x", "y"))
	want := []Tick{{Value: 0, Label: "x"}, {Value: 1, Label: "y"}}
	if diff := cmp.Diff(want, cat.Ticks(6, "")); diff != "" {
		t.Errorf("categorical ticks (-want +got):\n%s", diff)
	}
}
