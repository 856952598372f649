// Package prom adapts cache.Metrics events onto Prometheus collectors.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cdnsim/cdnsim/cache"
)

// Adapter implements cache.Metrics and exports Prometheus counters/gauges
// labelled by the node the cache belongs to.
type Adapter struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	evicts  prometheus.Counter
	entries prometheus.Gauge
	weight  prometheus.Gauge
}

// New constructs a Prometheus adapter for one node's cache and registers its
// collectors with reg. A nil reg registers against
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, nodeID string) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := prometheus.Labels{"node": nodeID}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cdnsim",
			Subsystem:   "cache",
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: labels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cdnsim",
			Subsystem:   "cache",
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: labels,
		}),
		evicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "cdnsim",
			Subsystem:   "cache",
			Name:        "evictions_total",
			Help:        "Cache evictions",
			ConstLabels: labels,
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "cdnsim",
			Subsystem:   "cache",
			Name:        "resident_entries",
			Help:        "Number of resident cache entries",
			ConstLabels: labels,
		}),
		weight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "cdnsim",
			Subsystem:   "cache",
			Name:        "resident_weight",
			Help:        "Total resident cache weight",
			ConstLabels: labels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.entries, a.weight)
	return a
}

func (a *Adapter) Hit()  { a.hits.Inc() }
func (a *Adapter) Miss() { a.misses.Inc() }
func (a *Adapter) Evict() { a.evicts.Inc() }
func (a *Adapter) Size(entries int, weight int) {
	a.entries.Set(float64(entries))
	a.weight.Set(float64(weight))
}

var _ cache.Metrics = (*Adapter)(nil)
