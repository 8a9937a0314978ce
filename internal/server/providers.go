package server

import (
	"github.com/philly/showcase/backend/internal/adapters/rest/middleware"
	"github.com/philly/showcase/backend/internal/adapters/warehouse"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/showcase/application"
)

// provideVersion provides the application version
func provideVersion() string {
	return "1.0.0"
}

// provideLoggerConfig creates logger config from server config
func provideLoggerConfig(config Config) logger.Config {
	return logger.Config{
		Environment: config.Environment,
		LogLevel:    config.LogLevel,
	}
}

// provideWarehouseConfig creates the warehouse client config from server config
func provideWarehouseConfig(config Config) warehouse.Config {
	return warehouse.Config{
		BaseURL: config.WarehouseBaseURL,
		Timeout: config.WarehouseTimeout,
	}
}

// provideShowcaseConfig creates the showcase service config from server config.
// The id generator and clock keep their defaults.
func provideShowcaseConfig(config Config) application.Config {
	return application.Config{
		WarehouseTimeout: config.WarehouseTimeout,
		StorageTimeout:   config.StorageTimeout,
	}
}

// provideRateLimitConfig creates the publish rate limit config from server config
func provideRateLimitConfig(config Config) middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		RPS:   config.PublishRateLimit,
		Burst: config.PublishRateBurst,
	}
}
