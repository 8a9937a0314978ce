package application

import (
	"errors"
	"net/http"

	"github.com/philly/showcase/backend/internal/platform/apperror"
	"github.com/philly/showcase/backend/internal/showcase/domain"
	"github.com/philly/showcase/backend/internal/showcase/ports"
)

// Category is the stable outcome class of a showcase operation.
type Category string

const (
	CategorySuccess             Category = "success"
	CategoryBadRequest          Category = "bad_request"
	CategoryForbidden           Category = "forbidden"
	CategoryNotFound            Category = "not_found"
	CategoryUpstreamUnavailable Category = "upstream_unavailable"
	CategoryStorageFailure      Category = "storage_failure"
	CategoryInternal            Category = "internal"
)

// ErrStorageFailure marks errors that came out of the listing repository.
var ErrStorageFailure = errors.New("listing storage failed")

// Error definitions returned to callers
var (
	ErrMissingWarehouseItemID = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeMissingWarehouseItemID,
		"warehouseItemId is required",
		http.StatusBadRequest,
	)

	ErrInvalidListingID = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidListingID,
		"listing id is malformed",
		http.StatusBadRequest,
	)

	ErrInvalidListingData = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeInvalidFormat,
		"invalid listing data",
		http.StatusBadRequest,
	)

	ErrWarehouseItemNotFound = apperror.New(
		apperror.CodeBadRequest,
		apperror.BusinessCodeWarehouseItemNotFound,
		"warehouse item not found",
		http.StatusBadRequest,
	)

	ErrOwnershipMismatch = apperror.New(
		apperror.CodeForbidden,
		apperror.BusinessCodeOwnershipMismatch,
		"caller does not own the warehouse item",
		http.StatusForbidden,
	)

	ErrWarehouseUnavailable = apperror.New(
		apperror.CodeUpstreamUnavailable,
		apperror.BusinessCodeWarehouseUnavailable,
		"warehouse service is unavailable",
		http.StatusBadGateway,
	)

	ErrListingStorage = apperror.New(
		apperror.CodeStorageFailure,
		apperror.BusinessCodeListingStoreFailed,
		"listing storage failed",
		http.StatusInternalServerError,
	)

	ErrListingNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeListingNotFound,
		"listing not found",
		http.StatusNotFound,
	)

	ErrInternal = apperror.New(
		apperror.CodeInternalError,
		apperror.BusinessCodeGeneral,
		"internal error",
		http.StatusInternalServerError,
	)
)

// Classify is the single place where internal outcomes become caller-facing
// errors. The returned AppError keeps err as its inner cause for logging but
// its message never includes it.
func Classify(err error) (Category, *apperror.AppError) {
	if err == nil {
		return CategorySuccess, nil
	}

	var appErr *apperror.AppError
	switch {
	case errors.Is(err, domain.ErrMissingWarehouseItemID):
		return CategoryBadRequest, ErrMissingWarehouseItemID.WithInner(err)
	case errors.Is(err, domain.ErrInvalidListingID):
		return CategoryBadRequest, ErrInvalidListingID.WithInner(err)
	case errors.Is(err, domain.ErrInvalidWarehouseItemID), errors.Is(err, domain.ErrInvalidMeta):
		return CategoryBadRequest, ErrInvalidListingData.WithDetails(err.Error()).WithInner(err)
	case errors.Is(err, ports.ErrItemNotFound):
		return CategoryBadRequest, ErrWarehouseItemNotFound.WithInner(err)
	case errors.Is(err, domain.ErrOwnershipDenied):
		return CategoryForbidden, ErrOwnershipMismatch.WithInner(err)
	case errors.Is(err, ports.ErrWarehouseUnavailable):
		return CategoryUpstreamUnavailable, ErrWarehouseUnavailable.WithInner(err)
	case errors.Is(err, ports.ErrListingNotFound):
		return CategoryNotFound, ErrListingNotFound.WithInner(err)
	case errors.Is(err, ErrStorageFailure):
		return CategoryStorageFailure, ErrListingStorage.WithInner(err)
	case errors.As(err, &appErr):
		return categoryOf(appErr), appErr
	default:
		return CategoryInternal, ErrInternal.WithInner(err)
	}
}

func categoryOf(appErr *apperror.AppError) Category {
	switch appErr.Code {
	case apperror.CodeBadRequest:
		return CategoryBadRequest
	case apperror.CodeForbidden:
		return CategoryForbidden
	case apperror.CodeNotFound:
		return CategoryNotFound
	case apperror.CodeUpstreamUnavailable:
		return CategoryUpstreamUnavailable
	case apperror.CodeStorageFailure:
		return CategoryStorageFailure
	default:
		return CategoryInternal
	}
}
