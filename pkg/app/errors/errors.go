// Package errors defines the service error type shared by all HTTP-facing
// services and its mapping onto HTTP status codes.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError.
type Category int

const (
	// CategoryNoError marks the zero value.
	CategoryNoError Category = iota
	// CategoryDataError means the caller sent malformed or missing data.
	CategoryDataError
	// CategoryUnauthorized means the caller did not present valid credentials.
	CategoryUnauthorized
	// CategoryResourceNotFound means the addressed record does not exist.
	CategoryResourceNotFound
	// CategoryDataConflict means the request raced with another writer or
	// targets a record in an incompatible state.
	CategoryDataConflict
	// CategoryDependencyFailure means the network node or another upstream failed.
	// It renders as 500 but keeps its own message instead of the generic one.
	CategoryDependencyFailure
	// CategoryExecutionFailure means a transfer was attempted and failed.
	CategoryExecutionFailure
	// CategoryGeneralError means the service failed in an unexpected way.
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDataConflict:
		return "CategoryDataConflict"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryExecutionFailure:
		return "CategoryExecutionFailure"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a user-facing message and the underlying cause.
// Only Message is ever written to a response body.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error returns the underlying cause when present.
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is reports whether err is a ServiceError with the given category.
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be logged as a server-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback + message)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// BadRequestError is returned for validation failures; message reaches the caller.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: ")
}

// ResourceNotFoundError is returned when a record does not exist.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: ")
}

// UnAuthorizedError is returned when credentials are missing or invalid.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized: ")
}

// ConflictError is returned when a conditional status update loses a race.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict: ")
}

// DependencyError is returned when the network node fails on a passthrough call.
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: ")
}

// ExecutionError is returned when the signer failed to send a transfer.
// The failure is already recorded on the transaction itself.
func ExecutionError(err error, message string) error {
	return newError(CategoryExecutionFailure, err, message, "execution failed: ")
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryDataConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
