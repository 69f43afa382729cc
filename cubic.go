package sketch

// CubicBez is a cubic Bézier segment. P0 and P3 are the anchors the curve
// passes through; P1 and P2 are the control points that shape it.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// EstimateLength approximates the arc length of the cubic by the length of the
// polyline through divisions+1 evenly spaced parameter values. Values of
// divisions less than 1 are treated as 1.
func (c CubicBez) EstimateLength(divisions int) float64 {
	divisions = max(divisions, 1)
	var sum float64
	prev := c.P0
	for i := 1; i <= divisions; i++ {
		p := c.Eval(float64(i) / float64(divisions))
		sum += prev.Distance(p)
		prev = p
	}
	return sum
}

// arclenTable returns, for divisions+1 evenly spaced parameter values, the
// fraction of the estimated arc length that lies before each of them.
//
// For a cubic of zero length, every entry is 0.
func (c CubicBez) arclenTable(divisions int) []float64 {
	table := make([]float64, divisions+1)
	prev := c.P0
	for i := 1; i <= divisions; i++ {
		p := c.Eval(float64(i) / float64(divisions))
		table[i] = table[i-1] + prev.Distance(p)
		prev = p
	}
	if total := table[divisions]; total > 0 {
		for i := range table {
			table[i] /= total
		}
	}
	return table
}

// solveForArclenFraction maps a fraction of arc length in [0, 1] to a
// parameter value, interpolating linearly within table as produced by
// arclenTable.
func solveForArclenFraction(table []float64, frac float64) float64 {
	if frac <= 0 {
		return 0
	}
	if frac >= 1 {
		return 1
	}
	divisions := len(table) - 1
	for i := 1; i <= divisions; i++ {
		if frac <= table[i] {
			t0 := float64(i-1) / float64(divisions)
			t1 := float64(i) / float64(divisions)
			d := table[i] - table[i-1]
			if d == 0 {
				return t0
			}
			return t0 + (frac-table[i-1])/d*(t1-t0)
		}
	}
	// Only reachable for zero-length cubics, whose table is all zeroes.
	return frac
}
