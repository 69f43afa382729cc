package sketch

import "math"

// AngularCompatibility returns the angle, in radians in [0, π], between the
// directions of two polylines as computed by [Polyline.Direction].
//
// Small angles mean the polylines were drawn in similar directions. Angles
// near π mean one of them runs the opposite way and needs reversing before
// the two can be compared or averaged. Polylines without a direction are
// compatible with everything.
//
// AngularCompatibility is symmetric in a and b.
func AngularCompatibility(a, b Polyline) float64 {
	return a.Direction().AngleBetween(b.Direction())
}

// orientTo returns pl, or a reversed copy of it if that runs closer to the
// direction of the anchor. It also returns the angle between the returned
// polyline and the anchor, and whether pl was reversed.
func orientTo(anchor, pl Polyline) (Polyline, float64, bool) {
	angle := AngularCompatibility(anchor, pl)
	if angle <= math.Pi/2 {
		return pl, angle, false
	}
	rev := pl.Reverse()
	return rev, AngularCompatibility(anchor, rev), true
}

// Orient returns copies of the members of cl, reversed where necessary so that
// all of them run in the direction of the cluster's anchor.
//
// Every member is compared against the anchor only, never against other
// members, so the result doesn't depend on the order in which members are
// visited.
func Orient(cl Cluster) []Polyline {
	if len(cl.Members) == 0 {
		return nil
	}
	anchor := cl.Anchor()
	out := make([]Polyline, len(cl.Members))
	out[0] = anchor.Clone()
	for i, m := range cl.Members[1:] {
		if o, _, reversed := orientTo(anchor, m); reversed {
			out[i+1] = o
		} else {
			out[i+1] = m.Clone()
		}
	}
	return out
}
