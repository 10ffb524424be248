package main

import (
	"fmt"
	"net"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/unicsmcr/hs_app/config"
	"github.com/unicsmcr/hs_app/middleware"
	"github.com/unicsmcr/hs_app/routers"
	"github.com/unicsmcr/hs_app/supervisor"
	"go.uber.org/zap"
)

// Server is the HTTP application: a gin engine with the middleware chain and routes attached
type Server struct {
	*gin.Engine
	Port       int
	Logger     *zap.Logger
	Supervisor *supervisor.Supervisor
}

// NewServer creates the gin engine and attaches, in order: the fatal fault handler,
// request metrics, the access logger, CORS and the JSON body parser
func NewServer(logger *zap.Logger, cfg *config.AppConfig, mainRouter routers.MainRouter,
	sup *supervisor.Supervisor, registry *prometheus.Registry) Server {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(
		sup.Middleware(),
		middleware.NewRequestMetrics(registry).Middleware(),
		middleware.RequestLogger(os.Stdout),
		middleware.CORS(cfg.HTTP.CORS),
		middleware.JSONBody(cfg.HTTP.JSON),
	)

	mainRouter.RegisterRoutes(engine.Group("/"))

	return Server{
		Engine:     engine,
		Port:       cfg.Server.Port,
		Logger:     logger,
		Supervisor: sup,
	}
}

// Listen binds the configured port
func (s Server) Listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Port))
	if err != nil {
		return nil, errors.Wrapf(err, "could not listen on port %d", s.Port)
	}

	s.Logger.Info("server is running", zap.String("address", listener.Addr().String()))
	return listener, nil
}

// Run listens on the configured port and serves until the listener fails
func (s Server) Run() error {
	listener, err := s.Listen()
	if err != nil {
		return err
	}

	return s.Engine.RunListener(listener)
}
