// Command plotgen renders chart descriptions written in YAML into PNG or
// SVG images.
//
//	plotgen render -o chart.svg chart.yaml
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/plotgen"
	"github.com/vdobler/plotgen/chart"
	"github.com/vdobler/plotgen/expr"
	"github.com/vdobler/plotgen/measure"
	"github.com/vdobler/plotgen/render"
)

// options of the render command.
type options struct {
	output   string
	format   string
	width    float64
	height   float64
	dpi      float64
	font     string
	fontSize float64
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "plotgen",
		Short:        "Render declarative chart descriptions",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "render [flags] chart.yaml",
		Short: "Render a chart description into an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return run(log, &opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension)")
	f.StringVar(&opts.format, "format", "", "output format png or svg (default: from the output name, else png)")
	f.Float64Var(&opts.width, "width", 800, "image width in pixels")
	f.Float64Var(&opts.height, "height", 500, "image height in pixels")
	f.Float64Var(&opts.dpi, "dpi", 96, "resolution in dots per inch")
	f.StringVar(&opts.font, "font", plotgen.DefaultFont, "default font family")
	f.Float64Var(&opts.fontSize, "font-size", plotgen.DefaultFontSize, "default font size in points")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log the evaluation phases")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// outputFormat determines the file format and output name. The output
// never replaces the input.
func outputFormat(opts *options, input string) (render.Format, string, error) {
	var format render.Format
	var err error
	switch {
	case opts.format != "":
		format, err = render.ParseFormat(opts.format)
	case opts.output != "":
		format, err = render.FormatFromName(opts.output)
	default:
		format = render.PNG
	}
	if err != nil {
		return 0, "", err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format.String()
	}
	if filepath.Clean(output) == filepath.Clean(input) {
		return 0, "", fmt.Errorf("output %s would overwrite the chart description", output)
	}
	return format, output, nil
}

func run(log *zap.Logger, opts *options, input string) error {
	format, output, err := outputFormat(opts, input)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	desc, err := expr.FromYAML(src)
	if err != nil {
		return xerrors.Errorf("%s: %w", input, err)
	}

	layer := plotgen.NewLayer(vg.Length(opts.width), vg.Length(opts.height), opts.dpi)
	size := layer.FontSize
	if opts.fontSize > 0 {
		size = vg.Length(measure.PtToPx(opts.fontSize, layer.DPI))
	}
	if err := layer.SetFont(opts.font, size); err != nil {
		return err
	}

	canvas, err := render.New(format, layer.Width, layer.Height, layer.DPI, layer.Background)
	if err != nil {
		return err
	}
	env := &plotgen.Env{Layer: layer, Sink: canvas, Logger: log}
	if err := chart.Eval(env, desc); err != nil {
		return xerrors.Errorf("%s: %w", input, err)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if _, err := canvas.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Info("wrote chart",
		zap.String("output", output),
		zap.Stringer("format", format),
		zap.String("size", fmt.Sprintf("%gx%g", layer.Width, layer.Height)),
	)
	return nil
}
