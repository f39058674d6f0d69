package metrics

import (
	"net/http"
	"strconv"
	"time"

	"conectapro/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics owns an isolated registry so tests and multiple binaries never collide on the default one.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	transitions  *prometheus.CounterVec
	reviews      *prometheus.CounterVec
	completions  *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	m := NewWithNamespace(cfg.Metrics.Namespace)

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

func NewWithNamespace(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "route"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "service_request",
				Name:      "transitions_total",
				Help:      "Service request lifecycle events by outcome.",
			},
			[]string{"event", "result"},
		),
		reviews: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "review",
				Name:      "created_total",
				Help:      "Review creation attempts by outcome.",
			},
			[]string{"result"},
		),
		completions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "scheduler",
				Name:      "completions_total",
				Help:      "Requests marked completed by the scheduler.",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(m.httpRequests, m.httpDuration, m.transitions, m.reviews, m.completions)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) IncTransition(event, result string) {
	m.transitions.WithLabelValues(event, result).Inc()
}

func (m *Metrics) IncReview(result string) {
	m.reviews.WithLabelValues(result).Inc()
}

func (m *Metrics) IncCompletion(result string) {
	m.completions.WithLabelValues(result).Inc()
}

// Result classifies an operation outcome: nil is success, domain failures are rejected.
func Result(err error, rejected func(error) bool) string {
	switch {
	case err == nil:
		return ResultSuccess
	case rejected(err):
		return ResultRejected
	default:
		return ResultError
	}
}
