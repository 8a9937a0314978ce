package server

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	Environment      string        `mapstructure:"ENVIRONMENT"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"` // Logging level (debug, info, warn, error)
	WarehouseBaseURL string        `mapstructure:"WAREHOUSE_BASE_URL"`
	WarehouseTimeout time.Duration `mapstructure:"WAREHOUSE_TIMEOUT"`
	StorageTimeout   time.Duration `mapstructure:"STORAGE_TIMEOUT"`
	AutoMigrate      bool          `mapstructure:"AUTO_MIGRATE"`
	PublishRateLimit float64       `mapstructure:"PUBLISH_RATE_LIMIT"` // requests per second per client, 0 disables
	PublishRateBurst int           `mapstructure:"PUBLISH_RATE_BURST"`
	DBMaxConns       int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32         `mapstructure:"DB_MIN_CONNS"`
}

// requiredKeys have no default and must come from the environment
var requiredKeys = []string{"DATABASE_URL", "WAREHOUSE_BASE_URL"}

func LoadConfig(bootstrapLogger *logger.BootstrapLogger) (Config, error) {
	ctx := context.Background()

	// Load .env file if it exists (godotenv will find it automatically)
	// It's okay if the file doesn't exist - we'll use environment variables
	if err := godotenv.Load(); err != nil {
		bootstrapLogger.Info(ctx, "no .env file found, using environment variables only")
	} else {
		bootstrapLogger.Info(ctx, "loaded .env file")
	}

	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("WAREHOUSE_TIMEOUT", "3s")
	v.SetDefault("STORAGE_TIMEOUT", "5s")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("PUBLISH_RATE_LIMIT", 20)
	v.SetDefault("PUBLISH_RATE_BURST", 40)
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)

	// Keys without a default are invisible to Unmarshal unless bound
	for _, key := range requiredKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		bootstrapLogger.Error(ctx, "failed to unmarshal configuration", "error", err)
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	bootstrapLogger.Info(ctx, "configuration loaded",
		"environment", config.Environment,
		"log_level", config.LogLevel,
		"server_address", config.ServerAddress,
		"warehouse_base_url", config.WarehouseBaseURL,
	)

	if err := config.Validate(); err != nil {
		bootstrapLogger.Error(ctx, "configuration validation failed", "error", err)
		return Config{}, err
	}

	bootstrapLogger.Info(ctx, "configuration validated successfully")
	return config, nil
}

// Validate checks required values and their shape
func (c Config) Validate() error {
	var errs []error

	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.WarehouseBaseURL == "" {
		errs = append(errs, errors.New("WAREHOUSE_BASE_URL is required"))
	} else if u, err := url.Parse(c.WarehouseBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("WAREHOUSE_BASE_URL must be an absolute URL, got %q", c.WarehouseBaseURL))
	}
	if c.WarehouseTimeout <= 0 {
		errs = append(errs, errors.New("WAREHOUSE_TIMEOUT must be positive"))
	}
	if c.StorageTimeout <= 0 {
		errs = append(errs, errors.New("STORAGE_TIMEOUT must be positive"))
	}
	if c.PublishRateLimit < 0 {
		errs = append(errs, errors.New("PUBLISH_RATE_LIMIT must not be negative"))
	}
	if c.DBMinConns < 0 || c.DBMaxConns < 1 || c.DBMinConns > c.DBMaxConns {
		errs = append(errs, fmt.Errorf("invalid pool size: min %d, max %d", c.DBMinConns, c.DBMaxConns))
	}

	return errors.Join(errs...)
}
