package sketch

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDistributePointsCount(t *testing.T) {
	curves := map[string]Curve{
		"sine":   Fit(sinePoints(120), 1),
		"circle": Fit(circlePoints(72), 1),
		"line":   Line{Pt(0, 0), Pt(10, 0)}.Cubic().curve(),
		"point":  CubicBez{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)}.curve(),
	}
	for name, c := range curves {
		end, _ := c.End()
		for n := range 40 {
			pts := DistributePoints(c, n, DefaultDivisions)
			if len(pts) != n+1 {
				t.Errorf("%s: got %d points for n=%d, want %d", name, len(pts), n, n+1)
				continue
			}
			if last := pts[len(pts)-1]; last != end {
				t.Errorf("%s: n=%d: last point is %v, want exactly %v", name, n, last, end)
			}
			for i, p := range pts {
				if p.IsNaN() || p.IsInf() {
					t.Errorf("%s: n=%d: point %d is %v", name, n, i, p)
				}
			}
		}
	}
}

func TestDistributePointsEvenSpacing(t *testing.T) {
	c := Curve{
		Line{Pt(0, 0), Pt(30, 0)}.Cubic(),
		Line{Pt(30, 0), Pt(30, 10)}.Cubic(),
	}
	got := DistributePoints(c, 8, DefaultDivisions)
	want := []Point{
		Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(15, 0), Pt(20, 0), Pt(25, 0),
		Pt(30, 0), Pt(30, 5), Pt(30, 10),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestDistributePointsCurved(t *testing.T) {
	// Neighbouring samples on a smooth curve should be about equally far
	// apart. Parameters are interpolated linearly within each segment, which
	// only approximates arc length.
	c := Fit(sinePoints(120), 0.5)
	pts := DistributePoints(c, 50, 100)
	total := c.EstimateLength(100)
	want := total / 50
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Distance(pts[i-1]); math.Abs(d-want) > 0.2*want {
			t.Errorf("points %d and %d are %g apart, want about %g", i-1, i, d, want)
		}
	}
}

func TestDistributePointsZeroLengthSegment(t *testing.T) {
	c := Curve{
		Line{Pt(0, 0), Pt(10, 0)}.Cubic(),
		{Pt(10, 0), Pt(10, 0), Pt(10, 0), Pt(10, 0)},
		Line{Pt(10, 0), Pt(20, 0)}.Cubic(),
	}
	got := DistributePoints(c, 4, DefaultDivisions)
	want := []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(15, 0), Pt(20, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-9))
}

func TestDistributePointsDegenerate(t *testing.T) {
	if pts := DistributePoints(nil, 5, DefaultDivisions); pts != nil {
		t.Errorf("got %v for an empty curve, want nil", pts)
	}

	c := CubicBez{Pt(7, -1), Pt(7, -1), Pt(7, -1), Pt(7, -1)}.curve()
	diff(t, []Point{Pt(7, -1), Pt(7, -1), Pt(7, -1)}, DistributePoints(c, 2, DefaultDivisions))

	// Non-positive divisions fall back to the default.
	line := Line{Pt(0, 0), Pt(10, 0)}.Cubic().curve()
	diff(t, DistributePoints(line, 4, DefaultDivisions), DistributePoints(line, 4, 0))
}

func TestResampleFallback(t *testing.T) {
	diff(t, []Point{Pt(1, 2), Pt(1, 2), Pt(1, 2), Pt(1, 2)}, resample(nil, 3, DefaultDivisions, Pt(1, 2)))
}

// curve returns a single segment curve, for brevity in tests.
func (c CubicBez) curve() Curve {
	return Curve{c}
}
