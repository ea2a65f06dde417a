// Package api serves a read-only view of the active configuration.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/appserver-io/confnode/config"
	"github.com/appserver-io/confnode/model/schema"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type ConfigRestful struct {
	router   *mux.Router
	store    *config.Store
	gatherer prometheus.Gatherer
}

type OptionFn func(cr *ConfigRestful)

// WithGatherer serves the metrics of g on /metrics instead of the default
// registry.
func WithGatherer(g prometheus.Gatherer) OptionFn {
	return func(cr *ConfigRestful) {
		cr.gatherer = g
	}
}

func NewConfigRestful(store *config.Store, opts ...OptionFn) *ConfigRestful {
	cr := &ConfigRestful{router: mux.NewRouter(), store: store, gatherer: prometheus.DefaultGatherer}
	for _, opt := range opts {
		opt(cr)
	}
	return cr
}

// NewHandler returns the router of all read-only endpoints.
func NewHandler(store *config.Store, opts ...OptionFn) http.Handler {
	return NewConfigRestful(store, opts...).CreateHandler()
}

func (cr *ConfigRestful) CreateHandler() http.Handler {
	cr.router.HandleFunc("/config", cr.Config).Methods("GET")
	cr.router.HandleFunc("/containers/{name}", cr.Container).Methods("GET")
	cr.router.HandleFunc("/params/{name}", cr.Param).Methods("GET")
	cr.router.HandleFunc("/provisioners", cr.ListProvisioners).Methods("GET")
	cr.router.Handle("/metrics", promhttp.HandlerFor(cr.gatherer, promhttp.HandlerOpts{})).Methods("GET")
	return cr.router
}

// Config dumps the whole active tree together with its revision.
func (cr *ConfigRestful) Config(w http.ResponseWriter, req *http.Request) {
	snap := cr.store.Snapshot()
	root := snap.Root()
	if root == nil {
		http.Error(w, "no configuration loaded", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("X-Config-Revision", revision(snap.Revision()))
	writeJSON(w, schema.FromModel(root))
}

func (cr *ConfigRestful) Container(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	snap := cr.store.Snapshot()
	c, ok := snap.Container(name)
	if !ok {
		http.NotFound(w, req)
		return
	}
	if rev, ok := snap.RevisionOf("container", name); ok {
		w.Header().Set("X-Config-Revision", revision(rev))
	}
	writeJSON(w, schema.FromContainer(c))
}

// Param returns the effective value of a root param.
func (cr *ConfigRestful) Param(w http.ResponseWriter, req *http.Request) {
	p, ok := cr.store.Snapshot().Param(mux.Vars(req)["name"])
	if !ok {
		http.NotFound(w, req)
		return
	}
	writeJSON(w, &schema.Param{Name: p.Name(), Type: p.Type(), Value: p.String()})
}

func (cr *ConfigRestful) ListProvisioners(w http.ResponseWriter, req *http.Request) {
	result := make([]*schema.Provisioner, 0)
	if root := cr.store.Root(); root != nil {
		result = schema.FromModel(root).Provisioners
		if result == nil {
			result = make([]*schema.Provisioner, 0)
		}
	}
	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("Failed to write response", zap.Error(err))
	}
}

func revision(rev uint64) string {
	return strconv.FormatUint(rev, 10)
}
