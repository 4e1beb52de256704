// Package errors defines the application error catalog: typed errors that
// carry an HTTP status, a stable business error code and a user-facing
// message, rendered uniformly by the delivery layer.
package errors

import (
	"net/http"

	"workdesk/internal/errors"
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
	// Identity-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No profile exists for this account",
		"",
	)

	ErrTenantRequired = NewBaseError(
		http.StatusBadRequest,
		"TENANT_REQUIRED",
		"A tenant must be associated with this request",
		"",
	)

	// Geofence-related errors
	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrGeofenceNameRequired = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_NAME_REQUIRED",
		"Please enter a name for this geofence",
		"",
	)

	ErrGeofenceCenterRequired = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_CENTER_REQUIRED",
		"Please place the geofence center on the map first",
		"",
	)

	ErrGeofenceRadiusOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_RADIUS_OUT_OF_RANGE",
		"Geofence radius must be between 10 and 1000 meters",
		"",
	)

	ErrGeofenceCenterImmutable = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_CENTER_IMMUTABLE",
		"The center point of a geofence cannot be moved after creation",
		"",
	)

	ErrGeofenceTypeInvalid = NewBaseError(
		http.StatusBadRequest,
		"GEOFENCE_TYPE_INVALID",
		"Unknown geofence type",
		"",
	)

	// Assignment-related errors
	ErrEmployeeNotFound = NewBaseError(
		http.StatusNotFound,
		"EMPLOYEE_NOT_FOUND",
		"Employee not found",
		"",
	)

	ErrEmployeeNotEligible = NewBaseError(
		http.StatusBadRequest,
		"EMPLOYEE_NOT_ELIGIBLE",
		"Only hourly (wage) employees can be assigned to geofences",
		"",
	)

	// Account-closure errors
	ErrClosureRequestInvalid = NewBaseError(
		http.StatusBadRequest,
		"CLOSURE_REQUEST_INVALID",
		"Closure reason, user and tenant are required before the account can be closed",
		"",
	)

	ErrClosureDatabaseUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CLOSURE_DATABASE_UNAVAILABLE",
		"We hit a temporary database issue while closing your account. Please try again in a few minutes.",
		"",
	)

	ErrClosureFailed = NewBaseError(
		http.StatusBadGateway,
		"CLOSURE_FAILED",
		"We could not close your account right now. Please try again later.",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

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

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing
// the AppError interface while keeping the underlying cause for logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return e.details
}

// Unwrap exposes the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "A database error occurred"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
