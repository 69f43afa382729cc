package sketch

import "slices"

// Polyline is an ordered sequence of points, such as a freehand stroke. The
// order of the points is the direction in which the stroke was drawn.
//
// Functions in this package never modify a Polyline they are given. When they
// need a differently ordered polyline, they make a copy.
type Polyline []Point

// Clone returns a copy of the polyline.
func (pl Polyline) Clone() Polyline {
	return slices.Clone(pl)
}

// Reverse returns a copy of the polyline with its points in reverse order.
func (pl Polyline) Reverse() Polyline {
	out := slices.Clone(pl)
	slices.Reverse(out)
	return out
}

// Direction returns the general direction of the polyline: the vector from
// the mean of its first half of points to the mean of its second half. For a
// polyline of odd length, the middle point belongs to the second half.
//
// A polyline of fewer than two points has no direction and returns the zero
// vector.
func (pl Polyline) Direction() Vec2 {
	if len(pl) < 2 {
		return Vec2{}
	}
	mid := len(pl) / 2
	return centroid(pl[mid:]).Sub(centroid(pl[:mid]))
}

// Curve returns the polyline as a [Curve] of straight segments, one per pair
// of consecutive points. Each segment is parameterized proportionally to its
// length. A polyline of fewer than two points yields an empty curve.
func (pl Polyline) Curve() Curve {
	if len(pl) < 2 {
		return nil
	}
	out := make(Curve, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		out = append(out, Line{pl[i-1], pl[i]}.Cubic())
	}
	return out
}

// resample returns n+1 points evenly spaced along the curve, or n+1 copies of
// fallback if the curve is empty.
func resample(c Curve, n, divisions int, fallback Point) []Point {
	if pts := DistributePoints(c, n, divisions); pts != nil {
		return pts
	}
	out := make([]Point, max(n, 0)+1)
	for i := range out {
		out[i] = fallback
	}
	return out
}
