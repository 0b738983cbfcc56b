package httpserver

import (
	"fmt"
	"net/http"

	"github.com/HinduAI/Nara/internal/config"
	"github.com/HinduAI/Nara/internal/infrastructure"
	middleware "github.com/HinduAI/Nara/internal/interfaces/httpserver/middlewares"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver/routes/api"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	engine   *gin.Engine
	infra    *infrastructure.Infrastructure
	apiRoute *api.APIRoute
	config   *config.Config
}

func NewHttpServer(
	apiRoute *api.APIRoute,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		apiRoute,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		if !infra.TokenValidator.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "jwks not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})

	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Protected routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.AuthMiddleware(httpServer.infra.TokenValidator, httpServer.infra.Logger),
	)

	httpServer.apiRoute.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
