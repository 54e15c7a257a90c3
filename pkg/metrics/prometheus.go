// Package metrics exports routing and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hr_agent"

// Config configures the exporter.
type Config struct {
	// Registry to use (if nil, a new one is created)
	Registry *prometheus.Registry

	// Latency buckets in seconds
	LatencyBuckets []float64

	// Register Go runtime and process collectors
	WithRuntime bool
}

func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		WithRuntime:    true,
	}
}

// Exporter owns the collectors and the registry they are registered on.
type Exporter struct {
	registry *prometheus.Registry

	// Routing
	routingDecisions *prometheus.CounterVec
	handlerLatency   *prometheus.HistogramVec
	handlerErrors    *prometheus.CounterVec

	// LLM phrasing
	llmLatency *prometheus.HistogramVec

	// HTTP
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	activeSessions prometheus.Gauge
}

func New(cfg Config) *Exporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.routingDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "router",
			Name:      "decisions_total",
			Help:      "Routing decisions by category, target handler and authorization outcome",
		},
		[]string{"category", "handler", "authorized"},
	)

	e.handlerLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "agent",
			Name:      "handler_latency_seconds",
			Help:      "Specialist handler latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"handler"},
	)

	e.handlerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "agent",
			Name:      "handler_errors_total",
			Help:      "Specialist handler failures",
		},
		[]string{"handler", "error_type"},
	)

	e.llmLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "latency_seconds",
			Help:      "LLM phrasing latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"provider", "status"},
	)

	e.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	e.httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"method", "route"},
	)

	e.activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "active_sessions",
			Help:      "Number of live login sessions",
		},
	)

	registry.MustRegister(
		e.routingDecisions,
		e.handlerLatency,
		e.handlerErrors,
		e.llmLatency,
		e.httpRequests,
		e.httpLatency,
		e.activeSessions,
	)
	if cfg.WithRuntime {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return e
}

// RecordDecision counts one routing decision.
func (e *Exporter) RecordDecision(category, handler string, authorized bool) {
	e.routingDecisions.WithLabelValues(category, handler, strconv.FormatBool(authorized)).Inc()
}

// RecordHandler observes one handler invocation. errorType is empty on success.
func (e *Exporter) RecordHandler(handler string, latency time.Duration, errorType string) {
	e.handlerLatency.WithLabelValues(handler).Observe(latency.Seconds())
	if errorType != "" {
		e.handlerErrors.WithLabelValues(handler, errorType).Inc()
	}
}

func (e *Exporter) RecordLLM(provider string, latency time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	e.llmLatency.WithLabelValues(provider, status).Observe(latency.Seconds())
}

func (e *Exporter) RecordHTTP(method, route string, status int, latency time.Duration) {
	e.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	e.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (e *Exporter) SetActiveSessions(n int) {
	e.activeSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{Registry: e.registry})
}

func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}
