// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "astrasafe"

// Metrics is registered on its own registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	quizClassified *prometheus.CounterVec
	quizRejected   prometheus.Counter

	reviewsCreated prometheus.Counter
	signups        prometheus.Counter
	placesSeeded   prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		quizClassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "classified_total",
			Help:      "Quiz submissions classified, by persona.",
		}, []string{"persona"}),
		quizRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "rejected_total",
			Help:      "Quiz submissions rejected as invalid.",
		}),
		reviewsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "reviews_created_total",
			Help:      "Place reviews stored.",
		}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "accounts",
			Name:      "signups_total",
			Help:      "Accounts created.",
		}),
		placesSeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "places_seeded_total",
			Help:      "Demo places inserted by the seeder.",
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.quizClassified,
		m.quizRejected,
		m.reviewsCreated,
		m.signups,
		m.placesSeeded,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) QuizClassified(persona string) { m.quizClassified.WithLabelValues(persona).Inc() }
func (m *Metrics) QuizRejected()                 { m.quizRejected.Inc() }
func (m *Metrics) ReviewCreated()                { m.reviewsCreated.Inc() }
func (m *Metrics) Signup()                       { m.signups.Inc() }
func (m *Metrics) PlacesSeeded(n int)            { m.placesSeeded.Add(float64(n)) }
