package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heladeria_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "heladeria_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Dashboard metrics
	DashboardRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heladeria_dashboard_renders_total",
			Help: "Total number of dashboard renders by output format",
		},
		[]string{"format"}, // html, json
	)

	DashboardReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "heladeria_dashboard_reloads_total",
			Help: "Total number of dashboard data reloads",
		},
		[]string{"result"}, // success, error, skipped
	)
)

const (
	FormatHTML = "html"
	FormatJSON = "json"

	ReloadSuccess = "success"
	ReloadError   = "error"
	ReloadSkipped = "skipped"
)
