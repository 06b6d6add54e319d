package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"github.com/dentradar/dentradar-api/internal/handler"
	adminhandler "github.com/dentradar/dentradar-api/internal/handler/admin"
	authhandler "github.com/dentradar/dentradar-api/internal/handler/auth"
	bookinghandler "github.com/dentradar/dentradar-api/internal/handler/booking"
	locationhandler "github.com/dentradar/dentradar-api/internal/handler/location"
	personhandler "github.com/dentradar/dentradar-api/internal/handler/person"
	portalhandler "github.com/dentradar/dentradar-api/internal/handler/portal"
	providerhandler "github.com/dentradar/dentradar-api/internal/handler/provider"
	"github.com/dentradar/dentradar-api/internal/middleware"
	"github.com/dentradar/dentradar-api/internal/model"
)

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	providerH *providerhandler.Handler
	bookingH  *bookinghandler.Handler
	personH   *personhandler.Handler
	portalH   *portalhandler.Handler
	authH     *authhandler.Handler
	locationH *locationhandler.Handler
	adminH    *adminhandler.Handler
	h         *handler.Handler
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

func New(
	auth *middleware.AuthMiddleware,
	providerH *providerhandler.Handler,
	bookingH *bookinghandler.Handler,
	personH *personhandler.Handler,
	portalH *portalhandler.Handler,
	authH *authhandler.Handler,
	locationH *locationhandler.Handler,
	adminH *adminhandler.Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:    engine,
		auth:      auth,
		providerH: providerH,
		bookingH:  bookingH,
		personH:   personH,
		portalH:   portalH,
		authH:     authH,
		locationH: locationH,
		adminH:    adminH,
		h:         h,
		metrics:   initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.DefaultTimeoutConfig()),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)

	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	r.setupProtectedRoutes(protected)

	admin := api.Group("/admin")
	admin.Use(r.auth.Authenticate(), r.auth.RequireRole(string(model.ProfileRoleAdmin)))
	r.adminH.RegisterRoutes(admin)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.providerH.RegisterRoutes(rg)
	r.bookingH.RegisterRoutes(rg)
	r.authH.RegisterRoutes(rg)
	r.locationH.RegisterRoutes(rg)
	r.personH.RegisterPublicRoutes(rg)
}

func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	r.personH.RegisterRoutes(rg)
	r.portalH.RegisterRoutes(rg)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
