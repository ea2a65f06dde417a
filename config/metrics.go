package config

import (
	"fmt"
	"strings"

	"github.com/appserver-io/confnode/model"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks configuration reloads. A nil *Metrics records nothing.
type Metrics struct {
	reloads  prometheus.Counter
	failures prometheus.Counter
	revision prometheus.Gauge
	changes  *prometheus.CounterVec
	nodes    *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appserver",
			Subsystem: "config",
			Name:      "reloads_total",
			Help:      "Number of configuration loads applied.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "appserver",
			Subsystem: "config",
			Name:      "reload_failures_total",
			Help:      "Number of configuration loads rejected.",
		}),
		revision: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "appserver",
			Subsystem: "config",
			Name:      "revision",
			Help:      "Revision of the active configuration.",
		}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appserver",
			Subsystem: "config",
			Name:      "changes_total",
			Help:      "Named nodes added, updated or removed by reloads.",
		}, []string{"table", "kind"}),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "appserver",
			Subsystem: "config",
			Name:      "nodes",
			Help:      "Nodes of the active configuration by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.reloads, m.failures, m.revision, m.changes, m.nodes)
	return m
}

func (m *Metrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

func (m *Metrics) ObserveReload(root *model.Appserver, revision uint64, changes []Change) {
	if m == nil {
		return
	}
	m.reloads.Inc()
	m.revision.Set(float64(revision))
	for _, c := range changes {
		m.changes.WithLabelValues(c.Table, string(c.Kind)).Inc()
	}
	m.nodes.Reset()
	for kind, n := range CountNodes(root) {
		m.nodes.WithLabelValues(kind).Set(float64(n))
	}
}

// CountNodes counts the nodes of the tree by kind, e.g. "ModuleNode".
func CountNodes(root *model.Appserver) map[string]int {
	counts := make(map[string]int)
	model.Inspect(root, func(n model.Node) bool {
		counts[strings.TrimPrefix(fmt.Sprintf("%T", n), "*model.")]++
		return true
	})
	return counts
}
