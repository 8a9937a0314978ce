package server

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/platform/postgres"
)

// ConnectDatabase applies pending migrations when enabled, then creates the
// connection pool and returns it with a cleanup function
func ConnectDatabase(ctx context.Context, config Config, log logger.Logger) (*pgxpool.Pool, func(), error) {
	if config.AutoMigrate {
		log.Info(ctx, "applying database migrations")
		if err := postgres.Migrate(config.DatabaseURL); err != nil {
			log.Error(ctx, "failed to apply migrations", "error", err)
			return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	log.Info(ctx, "connecting to database")

	poolConfig, err := newPoolConfig(config)
	if err != nil {
		log.Error(ctx, "failed to parse database URL", "error", err)
		return nil, nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	log.Debug(ctx, "database pool configuration",
		"max_conns", poolConfig.MaxConns,
		"min_conns", poolConfig.MinConns,
		"max_conn_lifetime", poolConfig.MaxConnLifetime,
		"max_conn_idle_time", poolConfig.MaxConnIdleTime,
	)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error(ctx, "failed to create connection pool", "error", err)
		return nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, "failed to ping database", "error", err)
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info(ctx, "database connection established successfully")

	cleanup := func() {
		log.Info(context.Background(), "closing database connection pool")
		pool.Close()
	}

	return pool, cleanup, nil
}

func newPoolConfig(config Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = config.DBMaxConns
	poolConfig.MinConns = config.DBMinConns
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	// NUMERIC prices scan straight into decimal.Decimal
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	return poolConfig, nil
}
