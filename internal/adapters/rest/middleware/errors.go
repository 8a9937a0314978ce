package middleware

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	BusinessCode string `json:"business_code,omitempty"`
	Message      string `json:"message"`
	Context      any    `json:"context,omitempty"`
}

// WriteJSONError writes a JSON error response with consistent format.
// BaseHandler in the REST layer renders through the same body.
func WriteJSONError(w http.ResponseWriter, code string, businessCode string, message string, status int) {
	WriteErrorResponse(w, ErrorResponse{
		Error:        code,
		BusinessCode: businessCode,
		Message:      message,
	}, status)
}

// WriteErrorResponse writes body with the given status
func WriteErrorResponse(w http.ResponseWriter, body ErrorResponse, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body.Success = false
	// Ignore encoding errors here as we're already in error handling
	_ = json.NewEncoder(w).Encode(body)
}
