package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeConflict      = "CONFLICT"
	CodeInternal      = "INTERNAL_ERROR"
	CodeTimeout       = "TIMEOUT"
	CodeUnavailable   = "SERVICE_UNAVAILABLE"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotAuthorized = "CALENDAR_NOT_AUTHORIZED"
	CodeCalendarQuery = "CALENDAR_QUERY_FAILED"
	CodeCalendarWrite = "CALENDAR_WRITE_FAILED"
	CodePrecondition  = "PRECONDITION_VIOLATION"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) ToJSON() []byte {
	data, _ := json.Marshal(ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
	return data
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func NotFoundWithID(resource, id string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Timeout(message string) *AppError {
	return &AppError{
		Code:       CodeTimeout,
		Message:    message,
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

func Unavailable(service string) *AppError {
	return &AppError{
		Code:       CodeUnavailable,
		Message:    fmt.Sprintf("%s is temporarily unavailable", service),
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// CalendarNotAuthorized signals that no valid calendar credentials exist for
// the user; the caller is expected to trigger the re-authentication flow.
func CalendarNotAuthorized(userID int64) *AppError {
	return &AppError{
		Code:       CodeNotAuthorized,
		Message:    "calendar access is not authorized",
		HTTPStatus: http.StatusUnauthorized,
		Details: map[string]any{
			"user_id": userID,
		},
	}
}

// CalendarQuery wraps a failed busy-interval fetch. It is never retried here;
// retry policy belongs to the transport layer.
func CalendarQuery(userID int64, err error) *AppError {
	return &AppError{
		Code:       CodeCalendarQuery,
		Message:    "failed to query calendar availability",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
		Details: map[string]any{
			"user_id": userID,
		},
	}
}

// CalendarWrite wraps a failed event insert or delete.
func CalendarWrite(userID int64, index int, err error) *AppError {
	return &AppError{
		Code:       CodeCalendarWrite,
		Message:    "failed to write calendar event",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
		Details: map[string]any{
			"user_id": userID,
			"index":   index,
		},
	}
}

// Precondition marks a caller contract violation detected before any
// external call was made.
func Precondition(message string) *AppError {
	return &AppError{
		Code:       CodePrecondition,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is, or wraps, an AppError carrying the
// given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
