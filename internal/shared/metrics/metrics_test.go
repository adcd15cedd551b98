package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(leaveDaysApproved.WithLabelValues("SICK"))

	RecordApprovedDays("SICK", 3)
	RecordSubmission("SICK", "created")
	RecordReview("APPROVE", "APPROVED")

	assert.Equal(t, before+3, testutil.ToFloat64(leaveDaysApproved.WithLabelValues("SICK")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(leaveSubmissions.WithLabelValues("SICK", "created")), float64(1))
	assert.GreaterOrEqual(t, testutil.ToFloat64(leaveReviews.WithLabelValues("APPROVE", "APPROVED")), float64(1))
}

func TestInstrumentHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(InstrumentHTTP())
	r.GET("/leaves/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(Handler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/leaves/7", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/leaves/:id", "204")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "go_leave_http_requests_total")
}
