package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/philly/showcase/backend/internal/adapters/rest/middleware"
	"github.com/philly/showcase/backend/internal/platform/apperror"
	"github.com/philly/showcase/backend/internal/platform/logger"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// BaseHandler contains common dependencies and helper methods for all handlers
type BaseHandler struct {
	logger logger.Logger
}

// NewBaseHandler creates a new base handler with common dependencies
func NewBaseHandler(logger logger.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

// WriteJSONResponse writes a successful JSON response
func (h *BaseHandler) WriteJSONResponse(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error(r.Context(), "failed to encode response",
			"error", err,
			"status_code", statusCode,
		)
	}
}

// HandleError renders err. AppErrors keep their status and codes; anything
// else becomes a 500 without leaking the cause.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		h.logger.Error(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
		middleware.WriteJSONError(w,
			string(apperror.CodeInternalError),
			string(apperror.BusinessCodeGeneral),
			"internal error",
			http.StatusInternalServerError,
		)
		return
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.logger.Error(r.Context(), "request failed", "error", appErr.Inner, "code", appErr.Code, "path", r.URL.Path)
	}

	middleware.WriteErrorResponse(w, middleware.ErrorResponse{
		Error:        string(appErr.Code),
		BusinessCode: string(appErr.BusinessCode),
		Message:      appErr.Message,
		Context:      appErr.Details,
	}, appErr.HTTPStatus)
}

// DecodeJSON reads a bounded JSON body into dst. On failure it writes a 400
// and returns false.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		middleware.WriteJSONError(w,
			string(apperror.CodeBadRequest),
			string(apperror.BusinessCodeInvalidFormat),
			"request body must be a JSON object",
			http.StatusBadRequest,
		)
		return false
	}
	return true
}
