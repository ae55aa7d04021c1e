package app

import (
	"time"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/utils"
)

type Config struct {
	Port string

	// Auth: JWT secret wins when both are set; neither means open mode.
	JWTSecret    string
	SharedSecret string

	RateLimitMax    int
	RateLimitWindow time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	windowSeconds := utils.GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 60, log)
	return Config{
		Port:            utils.GetEnv("PORT", "8080", log),
		JWTSecret:       utils.GetEnv("RELAY_JWT_SECRET", "", log),
		SharedSecret:    utils.GetEnv("RELAY_SHARED_SECRET", "", log),
		RateLimitMax:    utils.GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 20, log),
		RateLimitWindow: time.Duration(windowSeconds) * time.Second,
	}
}
