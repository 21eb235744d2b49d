// Package errors defines typed web failures and their HTTP mapping.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown  Kind = "unknown"
	KindNotFound Kind = "not_found"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Cause   error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e Error) Unwrap() error {
	return e.Cause
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap builds a typed Error around cause.
func Wrap(kind Kind, message string, cause error) error {
	return Error{Kind: kind, Message: message, Cause: cause}
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	if appErr.Kind == KindNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
