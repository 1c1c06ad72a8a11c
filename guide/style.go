package guide

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/measure"
)

// A Style collects the default appearance of all guides.
type Style struct {
	Title     draw.TextStyle
	TickLabel draw.TextStyle

	Axis struct {
		Line         draw.LineStyle
		MajorTick    draw.LineStyle
		MinorTick    draw.LineStyle
		TickLength   vg.Length
		LabelPadding vg.Length
		TitleOffset  vg.Length
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	Background struct {
		Fill   color.Color
		Border draw.LineStyle
	}

	Legend struct {
		Label   draw.TextStyle
		Fill    color.Color
		Border  draw.LineStyle
		Padding measure.Measure
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2
// scaled to the layer: the layer font size is the size of axis titles,
// tick labels are a bit smaller.
func DefaultStyle(l *plotgen.Layer) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f*float64(x)*100) / 100)
	}
	base := l.FontSize
	fg := l.Foreground

	s := Style{}
	s.Title = l.TextStyle()
	s.Title.Font.Size = base
	s.TickLabel = l.TextStyle()
	s.TickLabel.Font.Size = scale(base, 1/1.2)

	s.Axis.Line = draw.LineStyle{Width: 1, Color: fg}
	s.Axis.MajorTick = draw.LineStyle{Width: 1, Color: fg}
	s.Axis.MinorTick = draw.LineStyle{Width: 1, Color: fg}
	s.Axis.TickLength = l.Pt(4)
	s.Axis.LabelPadding = scale(base, 0.4)
	s.Axis.TitleOffset = scale(base, 3)

	s.Grid.Major = draw.LineStyle{Width: 1, Color: color.Gray16{0xdddd}}
	s.Grid.Minor = draw.LineStyle{}

	s.Background.Border = draw.LineStyle{Width: l.Pt(1), Color: fg}

	s.Legend.Label = s.TickLabel
	s.Legend.Fill = l.Background
	s.Legend.Border = draw.LineStyle{Width: 1, Color: fg}
	s.Legend.Padding = measure.FromEm(1)

	return s
}
