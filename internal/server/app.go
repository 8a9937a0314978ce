package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philly/showcase/backend/internal/platform/eventbus"
	"github.com/philly/showcase/backend/internal/platform/logger"
	"github.com/philly/showcase/backend/internal/showcase/application"
)

// shutdownTimeout bounds how long in-flight requests and event handlers get
// to finish once shutdown starts
const shutdownTimeout = 10 * time.Second

type App struct {
	server *http.Server
	bus    *eventbus.Bus
	audit  *application.AuditLog
	logger logger.Logger
}

func NewApp(server *http.Server, bus *eventbus.Bus, audit *application.AuditLog, log logger.Logger) *App {
	return &App{
		server: server,
		bus:    bus,
		audit:  audit,
		logger: log,
	}
}

// Run starts the application and handles graceful shutdown. It returns when
// ctx is cancelled, a SIGINT/SIGTERM arrives or the listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting server", "addr", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to gracefully shutdown server: %w", err)
	}

	if err := a.bus.Drain(shutdownCtx); err != nil {
		a.logger.Warn(shutdownCtx, "event handlers still running at shutdown", "error", err)
	}

	a.logger.Info(shutdownCtx, "server stopped")
	return nil
}
