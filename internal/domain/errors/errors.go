package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrMissingAvailability = NewBaseError(
		http.StatusBadRequest,
		"MISSING_AVAILABILITY",
		"Please provide your availability before offering to donate",
		"",
	)

	ErrInvalidUnits = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UNITS",
		"Units must be a positive whole number",
		"",
	)

	ErrInvalidBloodType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BLOOD_TYPE",
		"Unknown blood type",
		"",
	)

	// Conflict errors
	ErrAlreadyResponded = NewBaseError(
		http.StatusConflict,
		"ALREADY_RESPONDED",
		"You have already offered to donate for this request",
		"",
	)

	ErrRequestNotPending = NewBaseError(
		http.StatusConflict,
		"REQUEST_NOT_PENDING",
		"This request has already been fulfilled",
		"",
	)

	ErrResponseLocked = NewBaseError(
		http.StatusConflict,
		"RESPONSE_LOCKED",
		"Offers on a fulfilled request can no longer be changed",
		"",
	)

	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"A profile already exists for this account",
		"",
	)

	// Not found errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"Blood request not found",
		"",
	)

	ErrResponseNotFound = NewBaseError(
		http.StatusNotFound,
		"RESPONSE_NOT_FOUND",
		"Donation offer not found",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"You do not have permission to modify this resource",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// BackendError represents a failure of the persistence or identity
// collaborator itself, implementing the AppError interface
type BackendError struct {
	err     error
	details string
}

// NewBackendError creates a collaborator-related error
func NewBackendError(err error, details string) AppError {
	return &BackendError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return errors.Wrap(e.err, "backend operation failed").Error()
}

// Unwrap exposes the underlying collaborator error
func (e *BackendError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return "A backend service failed, please try again"
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return e.details
}
