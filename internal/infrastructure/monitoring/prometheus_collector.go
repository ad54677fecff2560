package monitoring

import (
	"strconv"
	"time"

	"skateplan/internal/core/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusCollector struct {
	// Outbound backend calls
	apiRequestsTotal   *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiFailuresTotal   *prometheus.CounterVec

	// Capability API
	accessLookupsTotal *prometheus.CounterVec
	httpRequestsTotal  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	profileCacheHits   *prometheus.CounterVec
}

// NewPrometheusCollector registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in binaries and a fresh registry in tests.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)
	return &PrometheusCollector{
		apiRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skateplan_api_requests_total",
			Help: "Requests sent to the backend API by method and status code",
		}, []string{"method", "status"}),

		apiRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skateplan_api_request_duration_seconds",
			Help:    "Latency of backend API requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),

		apiFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skateplan_api_failures_total",
			Help: "Failed backend API requests by failure kind",
		}, []string{"kind"}),

		accessLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skateplan_access_lookups_total",
			Help: "Permission sets served by entity kind and derived role",
		}, []string{"kind", "role"}),

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skateplan_http_requests_total",
			Help: "Capability API requests by route and status",
		}, []string{"method", "route", "status"}),

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "skateplan_http_request_duration_seconds",
			Help:    "Capability API request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		profileCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "skateplan_profile_cache_total",
			Help: "Profile cache lookups by result",
		}, []string{"result"}),
	}
}

// RecordAPIRequest records a backend call. status is 0 when no response
// was received.
func (p *PrometheusCollector) RecordAPIRequest(method string, status int, duration time.Duration) {
	code := "none"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	p.apiRequestsTotal.WithLabelValues(method, code).Inc()
	p.apiRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (p *PrometheusCollector) RecordAPIFailure(kind string) {
	p.apiFailuresTotal.WithLabelValues(kind).Inc()
}

func (p *PrometheusCollector) RecordAccessLookup(kind domain.EntityKind, role domain.AccessLevel) {
	label := string(role)
	if label == "" {
		label = "undetermined"
	}
	p.accessLookupsTotal.WithLabelValues(string(kind), label).Inc()
}

func (p *PrometheusCollector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	p.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (p *PrometheusCollector) RecordProfileCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.profileCacheHits.WithLabelValues(result).Inc()
}
