package sketch

// DistributePoints returns n+1 points spread evenly by estimated arc length
// along c.
//
// The first n points lie at multiples of the curve's estimated length divided
// by n, each found by interpolating linearly within the estimated length of
// the segment containing it. The last point is the curve's final anchor,
// exactly. Segments of zero estimated length are never sampled from the
// inside.
//
// Segment lengths are estimated with [CubicBez.EstimateLength] using the given
// number of divisions. If divisions is not positive, [DefaultDivisions] is
// used.
//
// DistributePoints returns nil for an empty curve. For n == 0 it returns only
// the final anchor.
func DistributePoints(c Curve, n int, divisions int) []Point {
	if len(c) == 0 {
		return nil
	}
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	end := c[len(c)-1].P3
	out := make([]Point, 0, n+1)
	if n <= 0 {
		return append(out, end)
	}

	lengths := make([]float64, len(c))
	var total float64
	for i, seg := range c {
		lengths[i] = seg.EstimateLength(divisions)
		total += lengths[i]
	}
	spacing := total / float64(n)

	// seg is the segment containing the current target and before is the
	// total length of all segments preceding it. Targets are increasing, so
	// both only ever move forward.
	seg := 0
	before := 0.0
	for k := range n {
		target := float64(k) * spacing
		for seg < len(c)-1 && (lengths[seg] == 0 || target >= before+lengths[seg]) {
			before += lengths[seg]
			seg++
		}
		var t float64
		if l := lengths[seg]; l > 0 {
			t = max(0, min(1, (target-before)/l))
		}
		out = append(out, c[seg].Eval(t))
	}
	return append(out, end)
}
