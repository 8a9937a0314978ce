package application_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/philly/showcase/backend/internal/platform/apperror"
	"github.com/philly/showcase/backend/internal/showcase/application"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		category   application.Category
		httpStatus int
		bizCode    apperror.BusinessCode
	}{
		{
			name:       "missing warehouse item id",
			err:        domain.ErrMissingWarehouseItemID,
			category:   application.CategoryBadRequest,
			httpStatus: http.StatusBadRequest,
			bizCode:    apperror.BusinessCodeMissingWarehouseItemID,
		},
		{
			name:       "item not found",
			err:        fmt.Errorf("resolve w9: %w", ports.ErrItemNotFound),
			category:   application.CategoryBadRequest,
			httpStatus: http.StatusBadRequest,
			bizCode:    apperror.BusinessCodeWarehouseItemNotFound,
		},
		{
			name:       "ownership denied",
			err:        domain.ErrOwnershipDenied,
			category:   application.CategoryForbidden,
			httpStatus: http.StatusForbidden,
			bizCode:    apperror.BusinessCodeOwnershipMismatch,
		},
		{
			name:       "warehouse unavailable",
			err:        fmt.Errorf("%w: status 503", ports.ErrWarehouseUnavailable),
			category:   application.CategoryUpstreamUnavailable,
			httpStatus: http.StatusBadGateway,
			bizCode:    apperror.BusinessCodeWarehouseUnavailable,
		},
		{
			name:       "storage failure",
			err:        fmt.Errorf("%w: %w", application.ErrStorageFailure, errors.New("conn reset")),
			category:   application.CategoryStorageFailure,
			httpStatus: http.StatusInternalServerError,
			bizCode:    apperror.BusinessCodeListingStoreFailed,
		},
		{
			name:       "listing not found",
			err:        ports.ErrListingNotFound,
			category:   application.CategoryNotFound,
			httpStatus: http.StatusNotFound,
			bizCode:    apperror.BusinessCodeListingNotFound,
		},
		{
			name:       "app error passes through",
			err:        application.ErrOwnershipMismatch,
			category:   application.CategoryForbidden,
			httpStatus: http.StatusForbidden,
			bizCode:    apperror.BusinessCodeOwnershipMismatch,
		},
		{
			name:       "unknown error",
			err:        errors.New("something else"),
			category:   application.CategoryInternal,
			httpStatus: http.StatusInternalServerError,
			bizCode:    apperror.BusinessCodeGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, appErr := application.Classify(tt.err)

			assert.Equal(t, tt.category, category)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.httpStatus, appErr.HTTPStatus)
			assert.Equal(t, tt.bizCode, appErr.BusinessCode)
			assert.ErrorIs(t, appErr, tt.err)
		})
	}
}

func TestClassify_Success(t *testing.T) {
	category, appErr := application.Classify(nil)
	assert.Equal(t, application.CategorySuccess, category)
	assert.Nil(t, appErr)
}

func TestClassify_MessageHidesCause(t *testing.T) {
	_, appErr := application.Classify(fmt.Errorf("%w: %w", application.ErrStorageFailure, errors.New("pq: password authentication failed")))
	assert.Equal(t, "listing storage failed", appErr.Error())
}
