package sketch

// Aggregate merges the members of a cluster into a single consensus polyline
// of exactly n+1 points.
//
// The members are oriented to run in the direction of the cluster's anchor
// (see [Orient]), each is fitted with [Fit] using fitTolerance, resampled to
// n+1 points with [DistributePoints], and the consensus point at each index is
// the mean of the members' points at that index.
//
// A member that has only a single distinct point contributes that point at
// every index. The cluster must have at least one member; n must not be
// negative.
func Aggregate(cl Cluster, n int, fitTolerance float64) Polyline {
	return aggregate(cl, n, fitTolerance, DefaultDivisions)
}

func aggregate(cl Cluster, n int, fitTolerance float64, divisions int) Polyline {
	members := Orient(cl)
	sum := make([]Vec2, n+1)
	for _, m := range members {
		var fallback Point
		if len(m) > 0 {
			fallback = m[0]
		}
		c := Fit(m, fitTolerance)
		for i, p := range resample(c, n, divisions, fallback) {
			sum[i] = sum[i].Add(Vec2(p))
		}
	}

	out := make(Polyline, n+1)
	k := float64(len(members))
	for i, v := range sum {
		out[i] = Point(v.Div(k))
	}
	return out
}
