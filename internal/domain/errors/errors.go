// Package errors defines the application error taxonomy. Every error that
// can surface to an HTTP caller implements AppError so the delivery layer
// can map it without knowing where it came from.
package errors

import (
	"net/http"

	"github.com/lreale4125-ux/taplinknfc/internal/errors"
)

// AppError is the contract between business errors and the HTTP layer.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // stable business error code
	Message() string   // user-facing message
	Details() string   // optional extra context
}

// BaseError is the standard AppError implementation used by the predefined
// error values below.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying extra detail text.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// Validation and request shape.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request data",
		"",
	)

	// Identity.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"username or email already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrProtectedUser = NewBaseError(
		http.StatusForbidden,
		"PROTECTED_USER",
		"the bootstrap administrator cannot be deleted",
		"",
	)

	ErrSelfDelete = NewBaseError(
		http.StatusForbidden,
		"SELF_DELETE",
		"you cannot delete your own account",
		"",
	)

	ErrNoCompany = NewBaseError(
		http.StatusForbidden,
		"NO_COMPANY",
		"user is not associated with a company",
		"",
	)

	// Companies.
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"company not found",
		"",
	)

	ErrCompanyAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"COMPANY_ALREADY_EXISTS",
		"a company with this name already exists",
		"",
	)

	// Link registry.
	ErrLinkNotFound = NewBaseError(
		http.StatusNotFound,
		"LINK_NOT_FOUND",
		"link or selector not found",
		"",
	)

	ErrSelectorNotFound = NewBaseError(
		http.StatusNotFound,
		"SELECTOR_NOT_FOUND",
		"selector not found",
		"",
	)

	ErrKeychainNotFound = NewBaseError(
		http.StatusNotFound,
		"KEYCHAIN_NOT_FOUND",
		"keychain not found",
		"",
	)

	ErrKeychainAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"KEYCHAIN_ALREADY_EXISTS",
		"a keychain with this number already exists",
		"",
	)

	ErrLinkTargetInvalid = NewBaseError(
		http.StatusBadRequest,
		"LINK_TARGET_INVALID",
		"a link must have exactly one of url and selector_id",
		"",
	)

	// Ledger.
	ErrInsufficientFunds = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_FUNDS",
		"insufficient funds",
		"",
	)

	ErrInvalidAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_AMOUNT",
		"amount must be a positive number",
		"",
	)

	ErrSelfTransfer = NewBaseError(
		http.StatusBadRequest,
		"SELF_TRANSFER",
		"you cannot send a payment to yourself",
		"",
	)

	// Quotes.
	ErrQuoteNotFound = NewBaseError(
		http.StatusNotFound,
		"QUOTE_NOT_FOUND",
		"no quote available",
		"",
	)

	// Geocoding.
	ErrGeocodeNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOCODE_NOT_FOUND",
		"no result for this query",
		"",
	)

	// General.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError wraps an unexpected storage failure. The underlying
// error is logged server-side; callers only ever see the generic message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the wrapped error for errors.Is/As chains.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "internal server error"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
