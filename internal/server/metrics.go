package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dcrodman/objdefs/internal/registry"
)

const metricsNamespace = "objdefs"

type metrics struct {
	registry *prometheus.Registry

	lookups     *prometheus.CounterVec
	reloads     *prometheus.CounterVec
	identifiers *prometheus.GaugeVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Identifier lookups by namespace and result.",
		}, []string{"namespace", "result"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reloads_total",
			Help:      "Registry reloads by result.",
		}, []string{"result"}),
		identifiers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "identifiers",
			Help:      "Identifiers in the served registry by namespace and state.",
		}, []string{"namespace", "state"}),
	}
	m.registry.MustRegister(
		m.lookups,
		m.reloads,
		m.identifiers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *metrics) observeLookup(ns registry.Namespace, found bool) {
	result := "hit"
	if !found {
		result = "miss"
	}
	label := string(ns)
	if label == "" {
		label = "unknown"
	}
	m.lookups.WithLabelValues(label, result).Inc()
}

func (m *metrics) observeReload(err error) {
	if err != nil {
		m.reloads.WithLabelValues("error").Inc()
		return
	}
	m.reloads.WithLabelValues("ok").Inc()
}

func (m *metrics) setIdentifiers(reg *registry.Registry) {
	for _, ns := range registry.Namespaces {
		m.identifiers.WithLabelValues(string(ns), "active").Set(float64(reg.Count(ns)))
		m.identifiers.WithLabelValues(string(ns), "retired").Set(float64(reg.RetiredCount(ns)))
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
