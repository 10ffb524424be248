package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/routers/api/models"
	"github.com/unicsmcr/hs_app/services"
	"go.uber.org/zap"
)

// MainRouter is the router for the routes served at the root of the server
type MainRouter interface {
	models.Router
	Welcome(*gin.Context)
	Health(*gin.Context)
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	cfg            *config.AppConfig
	healthService  services.HealthService
	metricsHandler http.Handler
}

// NewMainRouter creates a MainRouter
func NewMainRouter(logger *zap.Logger, cfg *config.AppConfig, healthService services.HealthService, registry *prometheus.Registry) MainRouter {
	return &mainRouter{
		logger:         logger,
		cfg:            cfg,
		healthService:  healthService,
		metricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	}
}

// RegisterRoutes registers the root routes to the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Welcome)
	routerGroup.GET("/healthz", r.Health)
	routerGroup.GET("/metrics", gin.WrapH(r.metricsHandler))
}

// Welcome responds with the configured welcome text
func (r *mainRouter) Welcome(ctx *gin.Context) {
	ctx.String(http.StatusOK, r.cfg.Welcome)
}

// Health reports whether the database answers a ping
func (r *mainRouter) Health(ctx *gin.Context) {
	err := r.healthService.CheckDatabase(ctx.Request.Context())
	if err != nil {
		r.logger.Debug("health check failed", zap.Error(err))
		models.SendAPIError(ctx, http.StatusServiceUnavailable, "database is unavailable")
		return
	}

	r.Heartbeat(ctx)
}
