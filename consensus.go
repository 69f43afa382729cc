package sketch

import "golang.org/x/sync/errgroup"

// Consensus clusters polylines with [ClusterPolylines] and aggregates every
// cluster with [Aggregate], returning one consensus polyline of
// cfg.Samples+1 points per cluster, in the order the clusters were formed.
//
// If cfg.Workers is at least 2, up to that many clusters are aggregated
// concurrently. The result is the same as when aggregating serially.
//
// Consensus doesn't modify the polylines it is given. It doesn't validate cfg;
// see [Config.Validate].
func Consensus(polylines []Polyline, cfg Config) []Polyline {
	cfg = cfg.withDefaults()
	clusters := ClusterPolylines(polylines, cfg.clusterParams())
	Logger().Debug("clustered polylines",
		"polylines", len(polylines),
		"clusters", len(clusters),
	)

	out := make([]Polyline, len(clusters))
	aggregateOne := func(i int) {
		out[i] = aggregate(clusters[i], cfg.Samples, cfg.FitTolerance, cfg.Divisions)
		Logger().Debug("aggregated cluster",
			"cluster", i,
			"members", len(clusters[i].Members),
		)
	}

	if cfg.Workers < 2 || len(clusters) < 2 {
		for i := range clusters {
			aggregateOne(i)
		}
		return out
	}

	// Every worker writes only its own index of out, and aggregate works on
	// copies of the members.
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i := range clusters {
		g.Go(func() error {
			aggregateOne(i)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
