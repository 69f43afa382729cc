package sketch

import (
	"math"
	"math/rand/v2"
	"testing"
)

func randomPolyline(r *rand.Rand) Polyline {
	pl := make(Polyline, 1+r.IntN(12))
	for i := range pl {
		pl[i] = Pt(r.Float64()*500, r.Float64()*500)
	}
	return pl
}

func TestPolylineDirection(t *testing.T) {
	tests := []struct {
		pl   Polyline
		want Vec2
	}{
		{Polyline{Pt(0, 0), Pt(10, 0)}, Vec(10, 0)},
		{Polyline{Pt(0, 0), Pt(2, 0), Pt(4, 6)}, Vec(3, 3)},
		{Polyline{Pt(0, 0), Pt(2, 2), Pt(4, 4), Pt(6, 6)}, Vec(4, 4)},
		{Polyline{Pt(5, 5)}, Vec(0, 0)},
		{nil, Vec(0, 0)},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.pl.Direction())
	}
}

func TestPolylineReverse(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 5)}
	rev := pl.Reverse()
	diff(t, Polyline{Pt(2, 5), Pt(1, 0), Pt(0, 0)}, rev)
	diff(t, Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 5)}, pl)
}

func TestAngularCompatibility(t *testing.T) {
	h := Polyline{Pt(0, 0), Pt(100, 0)}
	tests := []struct {
		name string
		pl   Polyline
		want float64
	}{
		{"parallel", Polyline{Pt(0, 10), Pt(100, 10)}, 0},
		{"perpendicular", Polyline{Pt(0, 0), Pt(0, 100)}, math.Pi / 2},
		{"opposite", Polyline{Pt(100, 10), Pt(0, 10)}, math.Pi},
		{"single point", Polyline{Pt(3, 3)}, 0},
	}
	for _, tt := range tests {
		if got := AngularCompatibility(h, tt.pl); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: got %g, want %g", tt.name, got, tt.want)
		}
	}
}

func TestAngularCompatibilitySymmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		a, b := randomPolyline(r), randomPolyline(r)
		if ab, ba := AngularCompatibility(a, b), AngularCompatibility(b, a); ab != ba {
			t.Fatalf("AngularCompatibility(%v, %v) = %g, but reversed arguments give %g", a, b, ab, ba)
		}
	}
}

func TestOrient(t *testing.T) {
	anchor := Polyline{Pt(0, 0), Pt(50, 0), Pt(100, 0)}
	same := Polyline{Pt(0, 5), Pt(100, 5)}
	opposite := Polyline{Pt(100, -5), Pt(40, -5), Pt(0, -5)}
	cl := Cluster{
		Members: []Polyline{anchor, same, opposite},
		Indices: []int{2, 0, 1},
	}
	got := Orient(cl)
	want := []Polyline{
		{Pt(0, 0), Pt(50, 0), Pt(100, 0)},
		{Pt(0, 5), Pt(100, 5)},
		{Pt(0, -5), Pt(40, -5), Pt(100, -5)},
	}
	diff(t, want, got)

	// The cluster's polylines are left alone.
	diff(t, Polyline{Pt(100, -5), Pt(40, -5), Pt(0, -5)}, opposite)

	// The result doesn't share memory with the input.
	got[1][0] = Pt(-1, -1)
	if same[0] != Pt(0, 5) {
		t.Error("modifying oriented copy modified the input")
	}
}

func TestOrientOrderIndependent(t *testing.T) {
	// Compared against each other, b and c would disagree; only their
	// relation to the anchor counts.
	anchor := Polyline{Pt(0, 0), Pt(100, 0)}
	b := Polyline{Pt(0, 0), Pt(100, 90)}
	c := Polyline{Pt(100, 0), Pt(0, 90)}
	got1 := Orient(Cluster{Members: []Polyline{anchor, b, c}})
	got2 := Orient(Cluster{Members: []Polyline{anchor, c, b}})
	diff(t, got1[1], got2[2])
	diff(t, got1[2], got2[1])
	diff(t, Polyline{Pt(0, 90), Pt(100, 0)}, got1[2])
}

func TestOrientEmpty(t *testing.T) {
	if got := Orient(Cluster{}); got != nil {
		t.Errorf("got %v for an empty cluster, want nil", got)
	}
}
