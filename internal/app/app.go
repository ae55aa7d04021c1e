package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/lyftlogg/coach-backend/internal/clients/openai"
	redisclient "github.com/lyftlogg/coach-backend/internal/clients/redis"
	httpserver "github.com/lyftlogg/coach-backend/internal/http"
	httpH "github.com/lyftlogg/coach-backend/internal/http/handlers"
	httpMW "github.com/lyftlogg/coach-backend/internal/http/middleware"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/services"
)

type Clients struct {
	LLM       openai.Client
	RateStore redisclient.CounterStore // nil when unavailable
}

type Services struct {
	Coach services.CoachService
}

type Handlers struct {
	Health *httpH.HealthHandler
	Chat   *httpH.ChatHandler
}

type Middleware struct {
	Auth        *httpMW.AuthMiddleware
	RateLimiter *httpMW.RateLimiter
}

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Router   *gin.Engine
	Clients  Clients
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	clients, err := wireClients(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	serviceset := wireServices(log, clients)
	handlerset := wireHandlers(log, serviceset)
	middlewareset := wireMiddleware(log, cfg, clients)
	router := wireRouter(log, handlerset, middlewareset)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Router:   router,
		Clients:  clients,
		Services: serviceset,
	}, nil
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	llm, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init completion client: %w", err)
	}

	rateStore, err := redisclient.NewCounterStore(log)
	if err != nil {
		log.Warn("Rate-limit store unavailable, using in-process limiter only", "error", err.Error())
		rateStore = nil
	}

	return Clients{LLM: llm, RateStore: rateStore}, nil
}

func wireServices(log *logger.Logger, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Coach: services.NewCoachService(log, clients.LLM),
	}
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Chat:   httpH.NewChatHandler(log, serviceset.Coach),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config, clients Clients) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth:        httpMW.NewAuthMiddleware(log, cfg.JWTSecret, cfg.SharedSecret),
		RateLimiter: httpMW.NewRateLimiter(log, clients.RateStore, cfg.RateLimitMax, cfg.RateLimitWindow),
	}
}

func wireRouter(log *logger.Logger, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:            log,
		ChatHandler:    handlerset.Chat,
		HealthHandler:  handlerset.Health,
		AuthMiddleware: middlewareset.Auth,
		RateLimiter:    middlewareset.RateLimiter,
	})
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.RateStore != nil {
		_ = a.Clients.RateStore.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
