package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"uniadmin-backend/internal/metrics"
	"uniadmin-backend/internal/mw"
)

// Options tunes the middleware placed in front of the API.
type Options struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	// CacheTTL applies to catalog responses. Zero disables caching.
	CacheTTL    time.Duration
	// CORSOrigins lists allowed browser origins. Empty allows any.
	CORSOrigins []string
}

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.RequestLogger(), metrics.Handler(), mw.CORS(opts.CORSOrigins))

	r.GET("/healthz", h.Health)
	r.GET("/metrics", metrics.Exposer())

	// Catalog data never changes at runtime, so its responses are cacheable.
	caching := func(c *gin.Context) { c.Next() }
	if opts.CacheTTL > 0 {
		cacheStore := cache.New(opts.CacheTTL, 2*opts.CacheTTL)
		caching = mw.Cache(cacheStore, opts.CacheTTL)
	}

	api := r.Group("/api")
	if opts.RateLimitPerSec > 0 {
		api.Use(mw.RateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst))
	}
	{
		api.GET("/universities", caching, h.ListUniversities)
		api.GET("/universities/:id", caching, h.GetUniversity)
		api.GET("/courses", caching, h.ListCourses)
		api.GET("/courses/:id", caching, h.GetCourse)
		api.GET("/students", caching, h.ListStudents)
		api.GET("/students/:id", caching, h.GetStudent)
		api.GET("/dashboard/stats", caching, h.DashboardStats)

		for _, prefix := range []string{"/units", "/unidades"} {
			units := api.Group(prefix)
			units.GET("", h.ListUnits)
			units.POST("", h.CreateUnit)
			units.GET("/:id", h.GetUnit)
			units.PUT("/:id", h.UpdateUnit)
			units.DELETE("/:id", h.DeleteUnit)
		}

		for _, prefix := range []string{"/failures", "/falhas"} {
			failures := api.Group(prefix)
			failures.GET("", h.ListFailures)
			failures.POST("", h.CreateFailure)
			failures.GET("/stats", h.FailureStats)
			failures.GET("/:id", h.GetFailure)
			failures.PUT("/:id", h.UpdateFailure)
			failures.DELETE("/:id", h.DeleteFailure)
		}
	}

	return r
}
