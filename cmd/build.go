package cmd

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cdnsim/cdnsim/cache"
	"github.com/cdnsim/cdnsim/cache/prom"
	"github.com/cdnsim/cdnsim/sim"
	"github.com/cdnsim/cdnsim/sim/workload"
)

// BuildSimulator assembles a Simulator from a validated RunRequest and its
// PolicyBundle defaults: generates a reference workload sized off
// cacheSize (§6), builds matching Origin/Node/User topology from the
// request's echoed coordinates, and wires per-node Prometheus metrics when
// the bundle names a metrics address.
func BuildSimulator(req *RunRequest, bundle PolicyBundle, seed int64) (*sim.Simulator, error) {
	users, items := workload.GenerateWorkload(seed, len(req.UserCoordinates), req.CacheSize)
	for i, p := range req.UserCoordinates {
		if i < len(users) {
			users[i].Coords = p.toCoordinate()
		}
	}
	userPtrs := make([]*sim.User, len(users))
	for i := range users {
		userPtrs[i] = &users[i]
	}

	origin, err := sim.NewOrigin(req.Coordinates.toCoordinate(), items)
	if err != nil {
		return nil, err
	}

	var registerer prometheus.Registerer
	if bundle.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		registerer = registry
		go serveMetrics(bundle.MetricsAddr, registry)
	}

	nodes := make([]*sim.Node, len(req.NodeCoordinates))
	for i, p := range req.NodeCoordinates {
		nodeID := sim.NodeID(fmt.Sprintf("node%d", i))
		policy := newCachePolicy(req.CachePolicy)

		var metrics cache.Metrics
		if registerer != nil {
			metrics = prom.New(registerer, string(nodeID))
		}
		nodes[i] = sim.NewNode(nodeID, p.toCoordinate(), cache.New(req.CacheSize, policy, metrics))
	}

	cfg := sim.SimConfig{
		CachePolicy:          req.CachePolicy,
		CacheSize:            req.CacheSize,
		MaxRequestsPerSecond: req.MaxConcurrentRequests,
		RerouteRequests:      req.RerouteRequests,
		RerouteThreshold:     bundle.RerouteThreshold,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return sim.NewSimulator(origin, nodes, userPtrs, cfg), nil
}

func newCachePolicy(t sim.CachePolicyType) cache.Policy {
	switch t {
	case sim.CachePolicyFIFO:
		return cache.NewFIFO()
	case sim.CachePolicyLFU:
		return cache.NewLFU()
	default:
		return cache.NewLRU()
	}
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logrus.Infof("serving cache metrics on %s/metrics", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Error("metrics server stopped")
	}
}
