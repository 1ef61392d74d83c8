package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eaglegym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BranchDataQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_branch_data_queries_total",
			Help: "Total number of branch data queries by data type and outcome",
		},
		[]string{"data_type", "status"},
	)

	BranchResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_branch_resolutions_total",
			Help: "Active branch id lookups by result (cached, resolved, not_found, error)",
		},
		[]string{"result"},
	)

	BranchSelectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_branch_selections_total",
			Help: "Total number of branch selections",
		},
		[]string{"gym", "branch"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_cache_lookups_total",
			Help: "Branch data cache lookups by result",
		},
		[]string{"result"},
	)

	BookingLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eaglegym_booking_links_total",
			Help: "Total number of booking deep links issued",
		},
		[]string{"kind"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eaglegym_active_sessions",
			Help: "Number of live visitor sessions",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBranchDataQuery(dataType, status string) {
	BranchDataQueriesTotal.WithLabelValues(dataType, status).Inc()
}

func RecordBranchResolution(result string) {
	BranchResolutionsTotal.WithLabelValues(result).Inc()
}

func RecordBranchSelection(gym, branch string) {
	BranchSelectionsTotal.WithLabelValues(gym, branch).Inc()
}

func RecordCacheLookup(result string) {
	CacheLookupsTotal.WithLabelValues(result).Inc()
}

func RecordBookingLink(kind string) {
	BookingLinksTotal.WithLabelValues(kind).Inc()
}

func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
