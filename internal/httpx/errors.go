package httpx

import (
	"fmt"
	"net/http"
)

// AppError carries an HTTP status, a client-facing message and an optional
// internal cause. The cause is logged on write, never sent to the client.
type AppError struct {
	HTTPStatus int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status=%d, message=%s, err=%v", e.HTTPStatus, e.Message, e.Err)
	}
	return fmt.Sprintf("status=%d, message=%s", e.HTTPStatus, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(httpStatus int, message string, err error) *AppError {
	return &AppError{
		HTTPStatus: httpStatus,
		Message:    message,
		Err:        err,
	}
}

// ErrValidation creates a 400 validation error
func ErrValidation(message string) *AppError {
	if message == "" {
		message = "invalid request"
	}
	return NewAppError(http.StatusBadRequest, message, nil)
}

// ErrUnauthorized creates a 401 unauthorized error
func ErrUnauthorized(message string) *AppError {
	if message == "" {
		message = "unauthorized"
	}
	return NewAppError(http.StatusUnauthorized, message, nil)
}

// ErrForbidden creates a 403 forbidden error
func ErrForbidden(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return NewAppError(http.StatusForbidden, message, nil)
}

// ErrNotFound creates a 404 not found error
func ErrNotFound(message string) *AppError {
	if message == "" {
		message = "resource not found"
	}
	return NewAppError(http.StatusNotFound, message, nil)
}

// ErrConflict creates a 409 conflict error
func ErrConflict(message string) *AppError {
	if message == "" {
		message = "conflicting operation in progress"
	}
	return NewAppError(http.StatusConflict, message, nil)
}

// ErrDatabase creates a 500 database error with a generic client message
func ErrDatabase(message string, err error) *AppError {
	if message == "" {
		message = "database error"
	}
	return NewAppError(http.StatusInternalServerError, message, err)
}

// ErrInternal creates a 500 internal error
func ErrInternal(message string, err error) *AppError {
	if message == "" {
		message = "internal error"
	}
	return NewAppError(http.StatusInternalServerError, message, err)
}

// ErrProvider creates a 502 error for upstream provider failures that cannot
// be degraded away
func ErrProvider(message string, err error) *AppError {
	if message == "" {
		message = "provider unavailable"
	}
	return NewAppError(http.StatusBadGateway, message, err)
}
