package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/philly/showcase/backend/internal/platform/eventbus"
	"github.com/philly/showcase/backend/internal/showcase/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	log := &mockLogger{}
	bus := eventbus.NewBus(log)
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	app := NewApp(srv, bus, application.NewAuditLog(bus, log), log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestApp_RunReportsListenError(t *testing.T) {
	log := &mockLogger{}
	bus := eventbus.NewBus(log)
	srv := &http.Server{Addr: "256.0.0.1:bad", Handler: http.NotFoundHandler()}
	app := NewApp(srv, bus, application.NewAuditLog(bus, log), log)

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server error")
}
