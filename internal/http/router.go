package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/lyftlogg/coach-backend/internal/http/handlers"
	httpMW "github.com/lyftlogg/coach-backend/internal/http/middleware"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ChatHandler   *httpH.ChatHandler
	HealthHandler *httpH.HealthHandler

	AuthMiddleware *httpMW.AuthMiddleware
	RateLimiter    *httpMW.RateLimiter
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthMiddleware != nil {
			api.Use(cfg.AuthMiddleware.RequireAuth())
		}
		if cfg.RateLimiter != nil {
			api.Use(cfg.RateLimiter.Limit())
		}

		if cfg.ChatHandler != nil {
			api.POST("/coach/chat", cfg.ChatHandler.Chat)
		}
	}

	return r
}
