package sketch

import "slices"

const (
	// maxReparameterizations bounds the Newton-Raphson refinement of a single
	// fit attempt.
	maxReparameterizations = 20
	// errorDivisions is the resolution of the arc length table used to match
	// data points to curve parameters when measuring the fit error.
	errorDivisions = 10
)

// Fit fits a piecewise cubic curve to a sequence of points, such that every
// point's squared distance to the curve stays below maxSquaredError.
//
// Consecutive duplicate points are ignored. If fewer than two distinct points
// remain, Fit returns an empty curve.
//
// Fit implements Philip J. Schneider's algorithm from [An Algorithm for
// Automatically Fitting Digitized Curves]: each run of points is approximated
// by a single cubic via least squares with fixed end tangents, refined by
// Newton-Raphson reparameterization if it is close, and split at the worst
// point otherwise. Splitting only ever shrinks runs, and a run of two points
// is always fitted exactly, so Fit terminates for all inputs.
//
// The points must have finite coordinates. NaNs propagate into the result.
//
// [An Algorithm for Automatically Fitting Digitized Curves]: https://dl.acm.org/doi/10.5555/90767.90941
func Fit(points []Point, maxSquaredError float64) Curve {
	pts := dedup(points)
	if len(pts) < 2 {
		return nil
	}
	leftTangent, _ := pts[1].Sub(pts[0]).Normalize()
	rightTangent, _ := pts[len(pts)-2].Sub(pts[len(pts)-1]).Normalize()
	var out Curve
	fitCubic(pts, leftTangent, rightTangent, maxSquaredError, &out)
	return out
}

func dedup(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]Point, 1, len(points))
	out[0] = points[0]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// fitCubic appends a fit of pts to out. leftTangent points from pts[0] into
// the run, rightTangent points from the last point back into the run.
func fitCubic(pts []Point, leftTangent, rightTangent Vec2, maxError float64, out *Curve) {
	if len(pts) == 2 {
		*out = append(*out, thirdsCubic(pts[0], pts[1], leftTangent, rightTangent))
		return
	}

	u := chordLengthParameterize(pts)
	bez := generateBezier(pts, u, leftTangent, rightTangent)
	maxErr, split := computeMaxError(pts, bez, u)
	if maxErr < maxError {
		*out = append(*out, bez)
		return
	}

	// Close enough that reparameterizing might get us below the error bound.
	// Note that for maxError below 1, this never happens.
	if maxErr < maxError*maxError {
		prevErr, prevSplit := maxErr, split
		for range maxReparameterizations {
			uPrime := reparameterize(bez, pts, u)
			bez = generateBezier(pts, uPrime, leftTangent, rightTangent)
			maxErr, split = computeMaxError(pts, bez, uPrime)
			if maxErr < maxError {
				*out = append(*out, bez)
				return
			}
			if split == prevSplit {
				if ratio := maxErr / prevErr; ratio > 0.9999 && ratio < 1.0001 {
					Logger().Debug("reparameterization stagnated",
						"points", len(pts),
						"error", maxErr,
						"split", split,
					)
					break
				}
			}
			prevErr, prevSplit = maxErr, split
			u = uPrime
		}
	}

	// Fitting failed; split at the point of maximum error and fit both halves.
	// The tangent at the split point is shared by both halves, with opposite
	// signs, for approximate G1 continuity.
	center := pts[split-1].Sub(pts[split+1])
	if center == (Vec2{}) {
		center = pts[split-1].Sub(pts[split]).Turn90()
	}
	toCenter, _ := center.Normalize()
	fitCubic(pts[:split+1], leftTangent, toCenter, maxError, out)
	fitCubic(pts[split:], toCenter.Negate(), rightTangent, maxError, out)
}

// thirdsCubic returns the cubic from p0 to p3 whose control points lie a third
// of the chord length along the respective tangents.
func thirdsCubic(p0, p3 Point, leftTangent, rightTangent Vec2) CubicBez {
	d := p3.Distance(p0) / 3.0
	return CubicBez{
		P0: p0,
		P1: p0.Translate(leftTangent.Mul(d)),
		P2: p3.Translate(rightTangent.Mul(d)),
		P3: p3,
	}
}

// chordLengthParameterize assigns each point a parameter in [0, 1] that is
// proportional to the cumulative distance along the points.
func chordLengthParameterize(pts []Point) []float64 {
	u := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		u[i] = u[i-1] + pts[i].Distance(pts[i-1])
	}
	total := u[len(u)-1]
	for i := range u {
		u[i] /= total
	}
	return u
}

// generateBezier finds the cubic with the given end points and end tangent
// directions that best fits pts at parameters u in the least-squares sense.
func generateBezier(pts []Point, u []float64, leftTangent, rightTangent Vec2) CubicBez {
	first, last := pts[0], pts[len(pts)-1]
	// The cubic with both control points on the anchors, i.e. the
	// contribution of the anchors alone.
	base := CubicBez{first, first, last, last}

	var c00, c01, c11, x0, x1 float64
	for i, t := range u {
		mt := 1 - t
		a0 := leftTangent.Mul(3 * mt * mt * t)
		a1 := rightTangent.Mul(3 * mt * t * t)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		tmp := pts[i].Sub(base.Eval(t))
		x0 += a0.Dot(tmp)
		x1 += a1.Dot(tmp)
	}

	det := c00*c11 - c01*c01
	if det == 0 {
		return thirdsCubic(first, last, leftTangent, rightTangent)
	}
	alphaL := (x0*c11 - x1*c01) / det
	alphaR := (c00*x1 - c01*x0) / det

	// If alpha is negative or tiny, the least-squares fit is unusable. Fall
	// back on the heuristic used for two points.
	epsilon := 1e-6 * first.Distance(last)
	if !(alphaL >= epsilon && alphaR >= epsilon) {
		return thirdsCubic(first, last, leftTangent, rightTangent)
	}
	return CubicBez{
		P0: first,
		P1: first.Translate(leftTangent.Mul(alphaL)),
		P2: last.Translate(rightTangent.Mul(alphaR)),
		P3: last,
	}
}

// computeMaxError returns the largest squared distance between a point and
// its counterpart on the cubic, and the index of that point. Parameters are
// interpreted as fractions of arc length.
func computeMaxError(pts []Point, bez CubicBez, u []float64) (float64, int) {
	table := bez.arclenTable(errorDivisions)
	maxDist := 0.0
	split := len(pts) / 2
	for i := 1; i < len(pts)-1; i++ {
		t := solveForArclenFraction(table, u[i])
		if dist := bez.Eval(t).DistanceSquared(pts[i]); dist > maxDist {
			maxDist = dist
			split = i
		}
	}
	return maxDist, split
}

// reparameterize improves the parameters u of pts on bez. Parameters stay in
// [0, 1].
func reparameterize(bez CubicBez, pts []Point, u []float64) []float64 {
	out := slices.Clone(u)
	d1 := bez.Differentiate()
	d2 := d1.Differentiate()
	for i, p := range pts {
		out[i] = max(0, min(1, newtonRaphsonRootFind(bez, d1, d2, p, u[i])))
	}
	return out
}

// newtonRaphsonRootFind takes one Newton-Raphson step towards the parameter
// of the point on bez closest to p, i.e. a root of (Q(u)-p)·Q'(u).
func newtonRaphsonRootFind(bez CubicBez, d1 QuadBez, d2 Line, p Point, u float64) float64 {
	d := bez.Eval(u).Sub(p)
	q1 := Vec2(d1.Eval(u))
	q2 := Vec2(d2.Eval(u))
	numerator := d.Dot(q1)
	denominator := q1.Dot(q1) + d.Dot(q2)
	if denominator == 0 {
		return u
	}
	return u - numerator/denominator
}
