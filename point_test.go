package sketch

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(5, 1).Sub(Pt(2, 5)))
	diff(t, Pt(1, 2), Pt(0, 0).Midpoint(Pt(2, 4)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestCentroid(t *testing.T) {
	diff(t, Pt(2, 3), centroid([]Point{Pt(0, 0), Pt(4, 0), Pt(2, 9)}))
}

func TestVecNormalize(t *testing.T) {
	v, ok := Vec(3, 4).Normalize()
	if !ok {
		t.Fatal("couldn't normalize ⟨3, 4⟩")
	}
	diff(t, Vec(0.6, 0.8), v)

	v, ok = Vec(0, 0).Normalize()
	if ok {
		t.Errorf("normalized zero vector to %v", v)
	}
	if v.IsNaN() {
		t.Error("normalizing zero vector produced NaN")
	}
}

func TestVecAngleBetween(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec(1, 0), Vec(5, 0), 0},
		{Vec(1, 0), Vec(0, 2), math.Pi / 2},
		{Vec(1, 0), Vec(-3, 0), math.Pi},
		{Vec(1, 1), Vec(-1, 0), 3 * math.Pi / 4},
		{Vec(0, 0), Vec(1, 0), 0},
		// Nearly parallel vectors whose cosine rounds past 1.
		{Vec(0.1, 0.7), Vec(0.3, 2.1), 0},
	}
	for _, tt := range tests {
		got := tt.a.AngleBetween(tt.b)
		if math.IsNaN(got) {
			t.Errorf("angle between %v and %v is NaN", tt.a, tt.b)
			continue
		}
		if math.Abs(got-tt.want) > 1e-7 {
			t.Errorf("angle between %v and %v: got %g, want %g", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVecTurn90(t *testing.T) {
	diff(t, Vec(-2, 1), Vec(1, 2).Turn90())
	if d := Vec(1, 2).Dot(Vec(1, 2).Turn90()); d != 0 {
		t.Errorf("rotated vector isn't perpendicular, dot product is %g", d)
	}
}
