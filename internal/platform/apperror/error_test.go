package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/philly/showcase/backend/internal/platform/apperror"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		code         apperror.ErrorCode
		businessCode apperror.BusinessCode
		message      string
		httpStatus   int
	}{
		{
			name:         "creates forbidden error",
			code:         apperror.CodeForbidden,
			businessCode: apperror.BusinessCodeOwnershipMismatch,
			message:      "caller does not own the item",
			httpStatus:   http.StatusForbidden,
		},
		{
			name:         "creates bad request error",
			code:         apperror.CodeBadRequest,
			businessCode: apperror.BusinessCodeMissingWarehouseItemID,
			message:      "warehouseItemId is required",
			httpStatus:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperror.New(tt.code, tt.businessCode, tt.message, tt.httpStatus)

			if err.Code != tt.code {
				t.Errorf("expected code %v, got %v", tt.code, err.Code)
			}
			if err.BusinessCode != tt.businessCode {
				t.Errorf("expected business code %v, got %v", tt.businessCode, err.BusinessCode)
			}
			if err.Message != tt.message {
				t.Errorf("expected message %v, got %v", tt.message, err.Message)
			}
			if err.HTTPStatus != tt.httpStatus {
				t.Errorf("expected HTTP status %v, got %v", tt.httpStatus, err.HTTPStatus)
			}
			if err.Inner != nil {
				t.Errorf("expected no inner error, got %v", err.Inner)
			}
			if err.Details != nil {
				t.Errorf("expected no details, got %v", err.Details)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	innerErr := errors.New("connection refused")

	err := apperror.Wrap(
		innerErr,
		apperror.CodeStorageFailure,
		apperror.BusinessCodeListingStoreFailed,
		"failed to store listing",
		http.StatusInternalServerError,
	)

	if err.Inner != innerErr {
		t.Errorf("expected inner error %v, got %v", innerErr, err.Inner)
	}
	if !errors.Is(err, innerErr) {
		t.Errorf("expected errors.Is to reach the inner error")
	}
}

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	sentinel := apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidFormat,
		"invalid request",
		http.StatusBadRequest,
	)

	withDetails := sentinel.WithDetails(map[string]string{"field": "id"})

	if withDetails == sentinel {
		t.Fatalf("WithDetails should return a copy")
	}
	if sentinel.Details != nil {
		t.Errorf("sentinel details were modified: %v", sentinel.Details)
	}
	if withDetails.Details == nil {
		t.Errorf("expected details on the copy")
	}
	if !errors.Is(withDetails, sentinel) {
		t.Errorf("copy should still match the sentinel")
	}
}

func TestWithInner(t *testing.T) {
	sentinel := apperror.New(
		apperror.CodeUpstreamUnavailable,
		apperror.BusinessCodeWarehouseUnavailable,
		"warehouse unavailable",
		http.StatusBadGateway,
	)
	cause := errors.New("dial tcp: timeout")

	wrapped := sentinel.WithInner(cause)

	if sentinel.Inner != nil {
		t.Errorf("sentinel inner was modified")
	}
	if !errors.Is(wrapped, cause) {
		t.Errorf("expected wrapped error to unwrap to cause")
	}
}

func TestIs(t *testing.T) {
	err1 := apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeListingNotFound,
		"listing not found",
		http.StatusNotFound,
	)

	err2 := apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeListingNotFound,
		"different message",
		http.StatusNotFound,
	)

	err3 := apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeWarehouseItemNotFound,
		"item not found",
		http.StatusBadRequest,
	)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same codes match", err: err1, target: err2, want: true},
		{name: "different codes don't match", err: err1, target: err3, want: false},
		{name: "non-AppError doesn't match", err: err1, target: errors.New("plain"), want: false},
		{name: "wrapped AppError matches", err: fmt.Errorf("ctx: %w", err1), target: err2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	err := apperror.Wrap(
		errors.New("pq: relation does not exist"),
		apperror.CodeStorageFailure,
		apperror.BusinessCodeListingStoreFailed,
		"failed to store listing",
		http.StatusInternalServerError,
	).WithDetails(map[string]string{"id": "abc"})

	tests := []struct {
		name     string
		format   string
		contains []string
		excludes []string
	}{
		{
			name:     "simple string format hides cause",
			format:   "%s",
			contains: []string{"failed to store listing"},
			excludes: []string{"relation does not exist"},
		},
		{
			name:     "simple value format hides cause",
			format:   "%v",
			contains: []string{"failed to store listing"},
			excludes: []string{"relation does not exist"},
		},
		{
			name:   "verbose format includes all fields",
			format: "%+v",
			contains: []string{
				"Code: STORAGE_FAILURE",
				"BusinessCode: LISTING_STORE_FAILED",
				"HTTPStatus: 500",
				"Caused by: pq: relation does not exist",
				"Details: map[id:abc]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := fmt.Sprintf(tt.format, err)
			for _, expected := range tt.contains {
				if !strings.Contains(output, expected) {
					t.Errorf("expected output to contain %q, got %q", expected, output)
				}
			}
			for _, unexpected := range tt.excludes {
				if strings.Contains(output, unexpected) {
					t.Errorf("expected output not to contain %q, got %q", unexpected, output)
				}
			}
		})
	}
}
