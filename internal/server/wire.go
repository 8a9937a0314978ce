//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	pgadapter "github.com/philly/showcase/backend/internal/adapters/postgres"
	"github.com/philly/showcase/backend/internal/adapters/rest"
	"github.com/philly/showcase/backend/internal/adapters/rest/middleware"
	"github.com/philly/showcase/backend/internal/adapters/warehouse"
	"github.com/philly/showcase/backend/internal/platform/eventbus"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/platform/metrics"
	"github.com/philly/showcase/backend/internal/platform/postgres"
	"github.com/philly/showcase/backend/internal/showcase/application"
	"github.com/philly/showcase/backend/internal/showcase/ports"
)

// InitializeApp creates a fully configured App with all dependencies
func InitializeApp(ctx context.Context) (*App, func(), error) {
	wire.Build(
		// Bootstrap phase
		logger.NewBootstrapLogger,
		LoadConfig,

		// Main logger
		provideLoggerConfig,
		logger.ProviderSet,

		// Database
		ConnectDatabase,
		wire.Bind(new(postgres.Querier), new(*pgxpool.Pool)),
		wire.Bind(new(rest.DatabasePinger), new(*pgxpool.Pool)),

		// Repository providers (includes interface binding)
		pgadapter.ProviderSet,

		// Warehouse collaborator
		provideWarehouseConfig,
		warehouse.ProviderSet,

		// Platform services
		eventbus.ProviderSet,
		metrics.ProviderSet,
		wire.Bind(new(ports.PublishMetrics), new(*metrics.Recorder)),

		// Application services
		provideShowcaseConfig,
		application.ProviderSet,
		wire.Bind(new(rest.ShowcaseService), new(*application.ShowcaseService)),

		// REST handlers
		rest.ProviderSet,
		provideVersion,

		// Middleware
		provideRateLimitConfig,
		middleware.ProviderSet,

		// HTTP Server
		NewHTTPServer,

		// App
		NewApp,
	)

	return nil, nil, nil
}
