// Package metrics exposes Prometheus instrumentation for the scoring service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "career_scorer"

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	ATSScore        prometheus.Histogram
	Sentiment       prometheus.Histogram
	SentimentLabels *prometheus.CounterVec
	TopDomain       *prometheus.CounterVec
	StoreErrors     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"route"},
		),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"route", "status"},
		),

		ATSScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ats_score",
				Help:      "Keyword overlap scores returned, 0-100",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			},
		),

		Sentiment: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "overall_sentiment",
				Help:      "Overall feedback sentiment, 0-1",
				Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
			},
		),

		SentimentLabels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feedback_summaries_total",
				Help:      "Feedback analyses by summary label",
			},
			[]string{"summary"},
		),

		TopDomain: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "top_domain_total",
				Help:      "Number of times a domain was ranked first",
			},
			[]string{"domain"},
		),

		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_errors_total",
				Help:      "Profile store failures by operation",
			},
			[]string{"operation"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestsTotal,
		m.ATSScore,
		m.Sentiment,
		m.SentimentLabels,
		m.TopDomain,
		m.StoreErrors,
	)

	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObserveATSScore(score float64) {
	m.ATSScore.Observe(score)
}

func (m *Metrics) ObserveSentiment(overall float64, summary string) {
	m.Sentiment.Observe(overall)
	m.SentimentLabels.WithLabelValues(summary).Inc()
}

func (m *Metrics) ObserveTopDomain(domainID string) {
	m.TopDomain.WithLabelValues(domainID).Inc()
}

func (m *Metrics) ObserveStoreError(operation string) {
	m.StoreErrors.WithLabelValues(operation).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
