package metrics

import (
	"regexp"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Custom histogram buckets optimized for API response times ranging
	// from milliseconds to 30+ seconds so the storage upload calls get
	// usable quantiles at low sample counts
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Storage Client Metrics
	StorageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Session Store Metrics
	ActiveFormSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advancedforms_active_sessions",
			Help: "Number of live form sessions in the store",
		},
	)

	// Business Metrics
	FormSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advancedforms_submissions_total",
			Help: "Total number of profile form submissions",
		},
		[]string{"status"},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advancedforms_validation_failures_total",
			Help: "Total number of per-field validation failures",
		},
		[]string{"field", "kind"},
	)

	AvatarUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advancedforms_avatar_uploads_total",
			Help: "Total number of avatar uploads",
		},
		[]string{"status"},
	)

	TechEntriesPerSubmission = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advancedforms_tech_entries_per_submission",
			Help:    "Number of tech entries per submitted form",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// MeasureDuration returns the elapsed seconds since start
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

var listIndexPattern = regexp.MustCompile(`\[\d+\]`)

// FieldLabel strips list indexes from a field path so label
// cardinality stays bounded: techs[17].knowledge -> techs.knowledge
func FieldLabel(fieldPath string) string {
	return listIndexPattern.ReplaceAllString(fieldPath, "")
}
