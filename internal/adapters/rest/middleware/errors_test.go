package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		businessCode string
		message      string
		status       int
		expectedBody map[string]any
	}{
		{
			name:         "writes rate limited error",
			code:         "RATE_LIMITED",
			businessCode: "TOO_MANY_REQUESTS",
			message:      "too many requests",
			status:       http.StatusTooManyRequests,
			expectedBody: map[string]any{
				"success":       false,
				"error":         "RATE_LIMITED",
				"business_code": "TOO_MANY_REQUESTS",
				"message":       "too many requests",
			},
		},
		{
			name:    "omits empty business code",
			code:    "NOT_FOUND",
			message: "route not found",
			status:  http.StatusNotFound,
			expectedBody: map[string]any{
				"success": false,
				"error":   "NOT_FOUND",
				"message": "route not found",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteJSONError(w, tt.code, tt.businessCode, tt.message, tt.status)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var response map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestWriteErrorResponse_ForcesSuccessFalse(t *testing.T) {
	w := httptest.NewRecorder()

	WriteErrorResponse(w, ErrorResponse{
		Success: true,
		Error:   "BAD_REQUEST",
		Message: "invalid listing data",
		Context: map[string]string{"field": "meta"},
	}, http.StatusBadRequest)

	var response map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, map[string]any{"field": "meta"}, response["context"])
}
