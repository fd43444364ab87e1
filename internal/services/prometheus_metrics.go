package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricAnalyticsRequest        = "analytics.request"
	MetricAnalyticsDurationPrefix = "analytics."
	MetricCollaboratorCall        = "collaborator.call"
	MetricCircuitBreakerState     = "circuit_breaker.state"
	MetricTransactionsAnalyzed    = "transactions.analyzed"
)

type PrometheusMetrics struct {
	analyticsRequests    *prometheus.CounterVec
	analyticsDuration    *prometheus.HistogramVec
	transactionsAnalyzed prometheus.Histogram
	collaboratorCalls    *prometheus.CounterVec
	collaboratorDuration prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the collectors with the default registry. Call it once
// per process.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		analyticsRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analytics_requests_total",
				Help: "Total number of analytics and simulation requests",
			},
			[]string{"operation", "status"},
		),
		analyticsDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analytics_duration_milliseconds",
				Help:    "Analytics and simulation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		transactionsAnalyzed: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analytics_transactions_per_request",
				Help:    "Number of transactions submitted per analytics request",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		collaboratorCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collaborator_calls_total",
				Help: "Total number of text-completion collaborator calls by outcome",
			},
			[]string{"operation", "outcome"},
		),
		collaboratorDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "collaborator_call_duration_milliseconds",
				Help:    "Text-completion collaborator call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricAnalyticsRequest:
		m.analyticsRequests.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricCollaboratorCall:
		m.collaboratorCalls.WithLabelValues(tags["operation"], tags["outcome"]).Inc()
	}
}

// RecordProcessingTime accepts "collaborator.call" or "analytics.<operation>"
func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Microseconds()) / 1000

	switch {
	case name == MetricCollaboratorCall:
		m.collaboratorDuration.Observe(ms)
	case strings.HasPrefix(name, MetricAnalyticsDurationPrefix):
		m.analyticsDuration.WithLabelValues(strings.TrimPrefix(name, MetricAnalyticsDurationPrefix)).Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricTransactionsAnalyzed:
		m.transactionsAnalyzed.Observe(value)
	}
}

type noopMetrics struct{}

// NewNoopMetricsRecorder discards every observation
func NewNoopMetricsRecorder() MetricsRecorderInterface {
	return noopMetrics{}
}

func (noopMetrics) IncrementCounter(string, map[string]string) {}

func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
