package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. The legacy
// frontend contract serialises most failures inside a 200 envelope, so Status
// is usually StatusOK; file-intake failures are the one class that keeps a
// real server-error status.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the placement API taxonomy.
var (
	ErrStore      = New("STORE_ERROR", http.StatusOK, "database operation failed")
	ErrNotFound   = New("NOT_FOUND", http.StatusOK, "Not found")
	ErrDuplicate  = New("DUPLICATE", http.StatusOK, "record already exists")
	ErrAuth       = New("AUTH_ERROR", http.StatusOK, "authentication failed")
	ErrUpload     = New("UPLOAD_ERROR", http.StatusInternalServerError, "file upload failed")
	ErrValidation = New("VALIDATION_ERROR", http.StatusOK, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusOK, "internal server error")

	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrCacheMiss    = New("CACHE_MISS", http.StatusOK, "cache miss")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
