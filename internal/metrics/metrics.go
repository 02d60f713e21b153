package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics:
// - http_requests_total: requests by route, method and status
// - http_request_duration_seconds: latency by route and method
// - record_mutations_total: successful unit/failure writes by entity and operation
var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	RecordMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "record_mutations_total", Help: "Successful unit and failure writes."},
		[]string{"entity", "op"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, RecordMutations)
}

// Handler returns middleware recording request count and latency.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(dur)
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer serves the default Prometheus registry.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
