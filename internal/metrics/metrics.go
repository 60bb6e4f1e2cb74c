// Package metrics defines Prometheus metrics for estatebot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "estatebot"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})
)

// onOffice API metrics.
var (
	OnOfficeCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onoffice_calls_total",
		Help:      "Total onOffice API calls by outcome.",
	}, []string{"outcome"})

	OnOfficeCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "onoffice_call_duration_seconds",
		Help:      "Duration of onOffice API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	OnOfficeProbeUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "onoffice_probe_up",
		Help:      "Whether the last scheduled onOffice credential probe succeeded.",
	})
)

// Chat routing metrics.
var (
	ChatRoutesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_routes_total",
		Help:      "Total chat prompts by routing decision.",
	}, []string{"route"})

	GenerativeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generative_duration_seconds",
		Help:      "Duration of generative gateway calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	GenerativeFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generative_failures_total",
		Help:      "Total generative gateway failures answered with the fallback reply.",
	})
)
