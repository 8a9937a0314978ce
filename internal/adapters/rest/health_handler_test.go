package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/philly/showcase/backend/internal/adapters/rest"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func TestGetLiveness(t *testing.T) {
	h := rest.NewHealthHandler(rest.NewBaseHandler(&mockLogger{}), "1.0.0", nil)
	rec := httptest.NewRecorder()

	h.GetLiveness(rec, httptest.NewRequest(http.MethodGet, "/api/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestGetReadiness(t *testing.T) {
	tests := []struct {
		name       string
		db         rest.DatabasePinger
		wantStatus int
		wantHealth string
		wantDB     any
	}{
		{name: "database up", db: stubPinger{}, wantStatus: http.StatusOK, wantHealth: "healthy", wantDB: "up"},
		{name: "database down", db: stubPinger{err: errors.New("refused")}, wantStatus: http.StatusServiceUnavailable, wantHealth: "unhealthy", wantDB: "down"},
		{name: "no database", db: nil, wantStatus: http.StatusOK, wantHealth: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := rest.NewHealthHandler(rest.NewBaseHandler(&mockLogger{}), "1.0.0", tt.db)
			rec := httptest.NewRecorder()

			h.GetReadiness(rec, httptest.NewRequest(http.MethodGet, "/api/health/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantHealth, body["status"])
			if tt.wantDB != nil {
				assert.Equal(t, map[string]any{"database": tt.wantDB}, body["checks"])
			}
		})
	}
}
