// Package metrics exposes Prometheus metrics for the conversion service on a
// dedicated listener.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion directions and results used as label values.
const (
	DirectionToSPKI   = "to_spki"
	DirectionFromSPKI = "from_spki"
	DirectionInspect  = "inspect"

	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// MetricsServer owns a private registry and the HTTP server that serves it.
type MetricsServer struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	srv         *http.Server
}

// New registers the service collectors under namespace and prepares a
// server for listenAddr. The server is not started.
func New(namespace, listenAddr string) (*MetricsServer, error) {
	registry := prometheus.NewRegistry()

	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Number of key conversions by direction and result.",
	}, []string{"direction", "result"})

	for _, c := range []prometheus.Collector{
		conversions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	m := &MetricsServer{
		registry:    registry,
		conversions: conversions,
	}
	m.srv = &http.Server{
		Addr:              listenAddr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return m, nil
}

// RecordConversion increments the conversion counter.
func (m *MetricsServer) RecordConversion(direction, result string) {
	m.conversions.WithLabelValues(direction, result).Inc()
}

// Handler returns the /metrics handler for the private registry.
func (m *MetricsServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return mux
}

func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
