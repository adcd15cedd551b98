package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_leave",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "go_leave",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"method", "path"},
	)

	leaveSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_leave",
			Subsystem: "leave",
			Name:      "submissions_total",
			Help:      "Leave submissions by category and outcome.",
		},
		[]string{"category", "outcome"},
	)

	leaveReviews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_leave",
			Subsystem: "leave",
			Name:      "reviews_total",
			Help:      "Processed leave reviews by decision and resulting status.",
		},
		[]string{"decision", "status"},
	)

	leaveDaysApproved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "go_leave",
			Subsystem: "leave",
			Name:      "approved_days_total",
			Help:      "Days of leave approved by category.",
		},
		[]string{"category"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		leaveSubmissions,
		leaveReviews,
		leaveDaysApproved,
	)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHTTP records request counts and latency per matched route.
func InstrumentHTTP() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordSubmission(category, outcome string) {
	leaveSubmissions.WithLabelValues(category, outcome).Inc()
}

func RecordReview(decision, status string) {
	leaveReviews.WithLabelValues(decision, status).Inc()
}

func RecordApprovedDays(category string, days int) {
	leaveDaysApproved.WithLabelValues(category).Add(float64(days))
}
