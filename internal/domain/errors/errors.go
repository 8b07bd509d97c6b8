// Package errors defines the application error taxonomy. Every error a
// handler can surface to a client is an AppError carrying an HTTP status
// and the exact user-visible message for it.
package errors

import (
	"net/http"

	"agrosikkim/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-visible error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-visible error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages are part of the wire contract:
// clients display them verbatim.
var (
	// Validation errors, rejected before any store access.
	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REQUEST_BODY",
		"Invalid request body",
	)

	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Email and password are required",
	)

	// Authentication errors. Unknown email and wrong password are
	// deliberately indistinguishable to avoid account enumeration.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// Registration conflicts, surfaced by the store's unique email index.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
	)

	// Unexpected failures. The two endpoints report different generic
	// messages, so they are distinct sentinels.
	ErrRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"REGISTRATION_FAILED",
		"Internal Server Error",
	)

	ErrSignInFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGNIN_FAILED",
		"Server error",
	)

	// Token-related errors, only reachable when issuance is enabled.
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
	)
)

// StoreExecuteError represents a store execution failure, implementing
// the AppError interface. The underlying error is logged server-side and
// never leaks to the client.
type StoreExecuteError struct {
	err error
}

// NewStoreExecuteError creates a store-related error with context.
func NewStoreExecuteError(err error, message string) AppError {
	return &StoreExecuteError{err: errors.Wrap(err, message)}
}

// Error implements the error interface.
func (e *StoreExecuteError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying store error for errors.Is/As.
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-visible error message.
func (e *StoreExecuteError) Message() string {
	return "Internal Server Error"
}
