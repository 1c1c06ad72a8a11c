// Package plotgen is the core of a declarative chart renderer.
//
// A chart is described by an expression tree (package expr): property
// lists which configure the plot scales, margins, guides and geometry
// elements. Evaluation happens in two phases over the same tree:
//
//   - Autorange: every geometry widens the shared x and y Scale of the
//     PlotConfig to cover its data. Nothing is drawn.
//   - Draw: guides and geometries translate their data through the now
//     complete scales and emit paths and text into the clip region of the
//     plot via a Sink.
//
// Scales
//
// A Scale maps a data domain to the unit interval [0,1]. Package plotgen
// knows about the following kinds:
//   - linear        numeric data, ticks from go-moremath
//   - log           positive numeric data, base 10 unless configured
//   - time          timestamps, mapped as Unix seconds
//   - categorical   text categories in order of first appearance,
//     category i occupies the slot [i, i+1]
//
// Explicit bounds (limit-x, limit-y-min, ...) always win over the data
// range. Padding only widens edges which are derived from data.
//
// Units
//
// Sizes are measures (package measure) in px, pt, em, rem or percent.
// A Layer carries the resolution and font size needed to resolve them
// to device pixels. Device space has its origin in the bottom left
// corner with y pointing up.
//
// Errors
//
// Invalid configuration is reported as *ConfigError naming the element
// and key, data which does not fit a scale as *ScaleError and failures
// of the sink as *RenderError.
package plotgen
