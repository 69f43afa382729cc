package sketch

// DefaultClusterDetail is the number of intervals polylines are resampled to
// when measuring the distance between them during clustering.
const DefaultClusterDetail = 50

// Cluster is a group of polylines judged to depict the same intended stroke.
//
// Members[0] is the cluster's anchor, the polyline all other members were
// compared against. Indices holds each member's position in the slice passed
// to [ClusterPolylines].
type Cluster struct {
	Members []Polyline
	Indices []int
}

// Anchor returns the cluster's anchor polyline, or nil for an empty cluster.
func (cl Cluster) Anchor() Polyline {
	if len(cl.Members) == 0 {
		return nil
	}
	return cl.Members[0]
}

// ClusterParams configures [ClusterPolylines].
type ClusterParams struct {
	// AngleThreshold is the exclusive upper bound, in radians, of the angular
	// compatibility of two polylines in the same cluster.
	AngleThreshold float64
	// DistanceThreshold is the exclusive upper bound of the average distance
	// between corresponding points of two polylines in the same cluster.
	DistanceThreshold float64
	// Detail is the number of intervals both polylines are resampled to
	// before measuring their distance. If it is not positive,
	// DefaultClusterDetail is used.
	Detail int
	// Divisions is the number of subdivisions used when estimating segment
	// lengths during resampling. If it is not positive, DefaultDivisions is
	// used.
	Divisions int
}

// ClusterPolylines groups polylines that are close in direction and position.
//
// The grouping is greedy and depends on the order of the input. Polylines are
// visited from last to first. Each one that isn't yet part of a cluster
// becomes the anchor of a new cluster, which is joined by every earlier
// unclustered polyline that satisfies both
//
//   - its [AngularCompatibility] with the anchor is less than
//     p.AngleThreshold, and
//   - the mean distance between corresponding points, after resampling both
//     polylines to p.Detail evenly spaced intervals, is less than
//     p.DistanceThreshold.
//
// Candidates running opposite to the anchor are reversed before both tests,
// so the direction in which a stroke was drawn doesn't keep it out of a
// cluster.
//
// Every polyline ends up in exactly one cluster. Clusters are returned in the
// order they were created. Thresholds must be positive; with thresholds of
// zero, every polyline forms its own cluster.
func ClusterPolylines(polylines []Polyline, p ClusterParams) []Cluster {
	detail := p.Detail
	if detail <= 0 {
		detail = DefaultClusterDetail
	}

	// Resampled polylines, computed on first use.
	samples := make([][]Point, len(polylines))
	sampled := func(i int) []Point {
		if samples[i] == nil {
			samples[i] = resamplePolyline(polylines[i], detail, p.Divisions)
		}
		return samples[i]
	}

	assigned := make([]bool, len(polylines))
	var out []Cluster
	for i := len(polylines) - 1; i >= 0; i-- {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		anchor := polylines[i]
		cl := Cluster{
			Members: []Polyline{anchor},
			Indices: []int{i},
		}
		for j := range i {
			if assigned[j] {
				continue
			}
			cand, angle, reversed := orientTo(anchor, polylines[j])
			if !(angle < p.AngleThreshold) {
				continue
			}
			var candSamples []Point
			if reversed {
				candSamples = resamplePolyline(cand, detail, p.Divisions)
			} else {
				candSamples = sampled(j)
			}
			if !(meanDistance(sampled(i), candSamples) < p.DistanceThreshold) {
				continue
			}
			assigned[j] = true
			cl.Members = append(cl.Members, polylines[j])
			cl.Indices = append(cl.Indices, j)
		}
		Logger().Debug("formed cluster",
			"anchor", i,
			"members", len(cl.Members),
		)
		out = append(out, cl)
	}
	return out
}

func resamplePolyline(pl Polyline, n, divisions int) []Point {
	var fallback Point
	if len(pl) > 0 {
		fallback = pl[0]
	}
	return resample(pl.Curve(), n, divisions, fallback)
}

// meanDistance returns the mean euclidean distance between corresponding
// points of two equally long point sequences.
func meanDistance(a, b []Point) float64 {
	var sum float64
	for i := range a {
		sum += a[i].Distance(b[i])
	}
	return sum / float64(len(a))
}
