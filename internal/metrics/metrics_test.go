package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHandler_CountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Handler())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	r.GET("/metrics", Exposer())

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("/ping/:id", "GET", "418"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/3", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues("/ping/:id", "GET", "418"))
	assert.Equal(t, before+1, after)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}
