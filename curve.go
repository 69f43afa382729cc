package sketch

// DefaultDivisions is the number of subdivisions used to estimate the arc
// length of a cubic Bézier when the caller doesn't choose one.
const DefaultDivisions = 10

// Curve is a piecewise cubic curve, as produced by [Fit].
//
// Consecutive segments share their joining anchor: for all i, c[i].P3 ==
// c[i+1].P0. Tangents at the joins are only approximately continuous.
type Curve []CubicBez

// Start returns the first anchor of the curve. It reports false if the curve
// has no segments.
func (c Curve) Start() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[0].P0, true
}

// End returns the last anchor of the curve. It reports false if the curve has
// no segments.
func (c Curve) End() (Point, bool) {
	if len(c) == 0 {
		return Point{}, false
	}
	return c[len(c)-1].P3, true
}

// EstimateLength returns the sum of the estimated lengths of all segments.
// See [CubicBez.EstimateLength].
func (c Curve) EstimateLength(divisions int) float64 {
	var sum float64
	for _, seg := range c {
		sum += seg.EstimateLength(divisions)
	}
	return sum
}

func (c Curve) IsInf() bool {
	for _, seg := range c {
		if seg.IsInf() {
			return true
		}
	}
	return false
}

func (c Curve) IsNaN() bool {
	for _, seg := range c {
		if seg.IsNaN() {
			return true
		}
	}
	return false
}
