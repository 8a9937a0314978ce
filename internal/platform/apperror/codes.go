package apperror

// ErrorCode is the caller-visible failure category.
type ErrorCode string

const (
	CodeBadRequest          ErrorCode = "BAD_REQUEST"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeStorageFailure      ErrorCode = "STORAGE_FAILURE"
	CodeRateLimited         ErrorCode = "RATE_LIMITED"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// BusinessCode narrows an ErrorCode down to the reason it was raised.
type BusinessCode string

const (
	BusinessCodeGeneral                BusinessCode = "GENERAL"
	BusinessCodeInvalidFormat          BusinessCode = "INVALID_FORMAT"
	BusinessCodeMissingWarehouseItemID BusinessCode = "MISSING_WAREHOUSE_ITEM_ID"
	BusinessCodeInvalidListingID       BusinessCode = "INVALID_LISTING_ID"
	BusinessCodeWarehouseItemNotFound  BusinessCode = "WAREHOUSE_ITEM_NOT_FOUND"
	BusinessCodeOwnershipMismatch      BusinessCode = "OWNERSHIP_MISMATCH"
	BusinessCodeWarehouseUnavailable   BusinessCode = "WAREHOUSE_UNAVAILABLE"
	BusinessCodeListingStoreFailed     BusinessCode = "LISTING_STORE_FAILED"
	BusinessCodeListingNotFound        BusinessCode = "LISTING_NOT_FOUND"
	BusinessCodeTooManyRequests        BusinessCode = "TOO_MANY_REQUESTS"
)
