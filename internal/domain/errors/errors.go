package errors

import (
	"net/http"

	"authd/internal/errors"
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

// Is matches errors by business error code, so copies produced by
// WithDetails still satisfy errors.Is against the predefined sentinels.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
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
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user does not exist",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username already exists",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email already exists",
		"",
	)

	ErrNoInternalCredential = NewBaseError(
		http.StatusNotFound,
		"NO_INTERNAL_CREDENTIAL",
		"user has no password credential",
		"",
	)

	// Authentication-related errors
	ErrBadCredentials = NewBaseError(
		http.StatusBadRequest,
		"BAD_CREDENTIALS",
		"bad credentials",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"invalid, expired or revoked token",
		"",
	)

	// Authorization-related errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"insufficient privileges",
		"",
	)

	// Google OAuth errors
	ErrMissingAuthorizationCode = NewBaseError(
		http.StatusBadRequest,
		"MISSING_AUTHORIZATION_CODE",
		"missing authorization code",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_EXCHANGE_FAILED",
		"authorization code exchange failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)
)

// DatabaseError represents a database operation failure. The underlying
// driver error is kept for logs but never surfaced to clients.
type DatabaseError struct {
	*BaseError
	cause error
}

// NewDatabaseExecuteError wraps a low-level database error into an AppError.
func NewDatabaseExecuteError(cause error, message string) *DatabaseError {
	return &DatabaseError{
		BaseError: NewBaseError(
			http.StatusInternalServerError,
			"DATABASE_ERROR",
			message,
			"",
		),
		cause: cause,
	}
}

// Unwrap exposes the underlying driver error for errors.Is/As chains.
func (e *DatabaseError) Unwrap() error {
	return e.cause
}
