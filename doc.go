// Package sketch turns several freehand strokes of the same intended line
// into one clean curve.
//
// People sketching a curve often draw it more than once, tracing over their
// earlier attempts. This package finds out which strokes belong together and
// averages each such group into a single consensus curve. It works purely on
// point data: capturing strokes and displaying results is up to the caller.
//
// # Pipeline
//
// [Consensus] runs the whole pipeline, which consists of the following steps,
// each of which is also available on its own:
//
//   - [ClusterPolylines] groups strokes whose directions (see
//     [AngularCompatibility]) and positions are close.
//   - [Orient] reverses strokes that were drawn in the opposite direction of
//     the rest of their group.
//   - [Fit] approximates each stroke by a smooth piecewise cubic [Curve].
//   - [DistributePoints] resamples each curve to a fixed number of points,
//     evenly spaced by arc length.
//   - [Aggregate] averages corresponding points of all strokes in a group.
//
// All of these are deterministic functions of their arguments. They never
// modify the polylines they are given and never return errors: degenerate
// input, such as strokes consisting of a single point, produces degenerate
// but well-formed output. Coordinates must be finite and thresholds positive;
// this isn't checked.
//
// # Configuration
//
// The parameters of [Consensus] are collected in [Config], which can be
// decoded from YAML with [LoadConfig]:
//
//	fit_tolerance: 4
//	angle_threshold: 0.35
//	distance_threshold: 25
//	samples: 64
//	workers: 4
//
// Distances are in the units of the caller's coordinate space, so sensible
// thresholds depend on the resolution of the input.
//
// # Logging
//
// The package logs debug records describing its decisions to the logger set
// with [SetLogger]. By default it logs nothing.
//
// # Literature
//
//   - [An Algorithm for Automatically Fitting Digitized Curves] by Philip J. Schneider
//   - [A Primer on Bézier Curves]
//
// [An Algorithm for Automatically Fitting Digitized Curves]: https://dl.acm.org/doi/10.5555/90767.90941
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package sketch
