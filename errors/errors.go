// Package errors defines the error kinds understood by the transport layer.
// Services return kinded errors; the HTTP boundary dispatches them once into
// status codes and never inspects concrete error types anywhere else.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags an error with the category the boundary maps to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
)

// Error carries a kind and a caller-safe message.
// The wrapped cause, if any, is for server-side logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Validation flags missing or empty required input.
func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound flags an unresolvable chat or assistant id.
func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal masks an unexpected fault behind a caller-safe message.
func Internal(message string, cause error) error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

// HTTPStatus maps an error to the status code exposed by the API.
func HTTPStatus(err error) int {
	var kinded *Error
	if !errors.As(err, &kinded) {
		return http.StatusInternalServerError
	}
	switch kinded.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to expose to the caller.
// Anything that is not a kinded error is masked behind a generic message.
func PublicMessage(err error) string {
	var kinded *Error
	if errors.As(err, &kinded) {
		return kinded.Message
	}
	return "An unexpected error occurred"
}
