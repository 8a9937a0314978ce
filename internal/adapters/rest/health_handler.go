package rest

import (
	"context"
	"net/http"
	"time"
)

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"
	CheckUp         = "up"
	CheckDown       = "down"
)

// DatabasePinger is satisfied by *pgxpool.Pool
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus is the body of both probe endpoints
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type HealthHandler struct {
	*BaseHandler
	version string
	db      DatabasePinger // For readiness check
}

func NewHealthHandler(base *BaseHandler, version string, db DatabasePinger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		version:     version,
		db:          db,
	}
}

// GetLiveness implements the liveness probe endpoint
// This is a lightweight check with no external dependencies
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONResponse(w, r, HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	}, http.StatusOK)
}

// GetReadiness implements the readiness probe endpoint
// Only the database is checked. A warehouse outage surfaces as 502 on
// publish and does not take the service out of rotation.
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	response := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	}
	httpStatus := http.StatusOK

	if h.db == nil {
		response.Status = StatusDegraded
		h.WriteJSONResponse(w, r, response, httpStatus)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response.Checks = map[string]string{"database": CheckUp}
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn(r.Context(), "readiness check failed", "check", "database", "error", err)
		response.Checks["database"] = CheckDown
		response.Status = StatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	h.WriteJSONResponse(w, r, response, httpStatus)
}
