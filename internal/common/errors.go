package common

import (
	"errors"
	"net/http"
)

// Code classifies a failure so handlers can map it to an HTTP status
// without inspecting error strings.
type Code string

const (
	CodeUnauthorized Code = "unauthorized"
	CodeInvalidToken Code = "invalid_token"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeValidation   Code = "validation"
	CodeUnavailable  Code = "unavailable"
	CodeInternal     Code = "internal"
)

type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

// HTTPStatus maps an error to the status the client should see.
// Unclassified errors are treated as internal.
func HTTPStatus(err error) int {
	var coded *Error
	if !errors.As(err, &coded) {
		return http.StatusInternalServerError
	}
	switch coded.Code {
	case CodeUnauthorized, CodeInvalidToken:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for an error. Internal causes are
// never leaked to clients.
func Message(err error) string {
	var coded *Error
	if errors.As(err, &coded) && coded.Code != CodeInternal {
		return coded.Message
	}
	return "internal server error"
}
