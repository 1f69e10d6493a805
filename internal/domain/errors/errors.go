package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Class groups errors by where they come from.
type Class string

const (
	// ClassNetwork covers transport, DNS and connection failures.
	ClassNetwork Class = "network"
	// ClassHTTP covers non-2xx responses.
	ClassHTTP Class = "http"
	// ClassPayload covers responses whose body is unusable or error-shaped.
	ClassPayload Class = "payload"
	// ClassClient covers requests refused locally before any network call.
	ClassClient Class = "client"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Class() Class      // Origin of the failure
	HTTPCode() int     // HTTP status code, 0 when no response was received
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	class     Class
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(class Class, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		class:     class,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	msg := e.message
	if e.details != "" {
		msg += ": " + e.details
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError carrying the same error code, so that
// errors.Is(err, ErrUpdateRejected) holds for a rejection built with details.
func (e *BaseError) Is(target error) bool {
	var t *BaseError
	if !stderrors.As(target, &t) {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Class returns the origin of the failure
func (e *BaseError) Class() Class {
	return e.class
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
	c := *e
	c.details = details

	return &c
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithHTTPCode records the status the server answered with.
func (e *BaseError) WithHTTPCode(code int) *BaseError {
	c := *e
	c.httpCode = code

	return &c
}

// WithCause attaches the underlying error.
func (e *BaseError) WithCause(err error) *BaseError {
	c := *e
	c.cause = err

	return &c
}

// Predefined error types
var (
	// ErrNetwork is a transport failure; no response was received.
	ErrNetwork = NewBaseError(
		ClassNetwork,
		0,
		"NETWORK_ERROR",
		"network request failed",
		"",
	)

	// ErrHTTPStatus is a non-2xx answer to a read.
	ErrHTTPStatus = NewBaseError(
		ClassHTTP,
		http.StatusInternalServerError,
		"HTTP_ERROR",
		"unexpected response status",
		"",
	)

	// ErrUpdateRejected is a non-2xx answer to a PUT. The caller must not
	// apply the change locally.
	ErrUpdateRejected = NewBaseError(
		ClassHTTP,
		http.StatusInternalServerError,
		"UPDATE_REJECTED",
		"update rejected by server",
		"",
	)

	// ErrPayload is a response body that cannot be used.
	ErrPayload = NewBaseError(
		ClassPayload,
		http.StatusOK,
		"PAYLOAD_ERROR",
		"unusable response payload",
		"",
	)

	// ErrUploadFailed is an upload answered with an error-shaped body.
	ErrUploadFailed = NewBaseError(
		ClassPayload,
		http.StatusOK,
		"UPLOAD_FAILED",
		"upload failed",
		"",
	)

	// ErrNoFileSelected is returned when an upload is submitted without a file.
	ErrNoFileSelected = NewBaseError(
		ClassClient,
		0,
		"NO_FILE_SELECTED",
		"Please select a file first!",
		"",
	)

	// ErrUploadInFlight is returned when an upload is submitted while another runs.
	ErrUploadInFlight = NewBaseError(
		ClassClient,
		0,
		"UPLOAD_IN_FLIGHT",
		"an upload is already in progress",
		"",
	)

	// ErrFieldNotEditable is returned when a view is asked to commit a column it
	// does not expose for editing.
	ErrFieldNotEditable = NewBaseError(
		ClassClient,
		0,
		"FIELD_NOT_EDITABLE",
		"field is not editable",
		"",
	)

	// ErrMissingIdentity is returned when a record to commit carries no identity.
	ErrMissingIdentity = NewBaseError(
		ClassClient,
		0,
		"MISSING_IDENTITY",
		"record has no identity",
		"",
	)

	// ErrRowNotFound is returned when a view has no row for the requested record.
	ErrRowNotFound = NewBaseError(
		ClassClient,
		0,
		"ROW_NOT_FOUND",
		"no such row",
		"",
	)
)

// ClassOf returns the class of err, or "" when it is not an AppError.
func ClassOf(err error) Class {
	var appErr AppError
	if !stderrors.As(err, &appErr) {
		return ""
	}

	return appErr.Class()
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool {
	return ClassOf(err) == ClassNetwork
}

// IsHTTP reports whether err is a non-2xx response.
func IsHTTP(err error) bool {
	return ClassOf(err) == ClassHTTP
}

// IsPayload reports whether err is an unusable or error-shaped payload.
func IsPayload(err error) bool {
	return ClassOf(err) == ClassPayload
}
