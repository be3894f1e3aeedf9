// Package errors classifies failures raised while serving a page so the
// error page can pick a status and a message.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind is the failure class of a page error.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindTooLarge     Kind = "too_large"
	KindUnavailable  Kind = "unavailable"
)

var kindStatus = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
	KindForbidden:    http.StatusForbidden,
	KindTooLarge:     http.StatusRequestEntityTooLarge,
	KindUnavailable:  http.StatusServiceUnavailable,
}

// Error carries a Kind, an optional catalog key for the visitor-facing
// message, and a log message.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E returns an Error of kind.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK returns an Error of kind whose page message is the catalog entry key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// KindOf returns the kind of the first Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var pageErr Error
	if err == nil || !stderrors.As(err, &pageErr) {
		return KindUnknown
	}
	return pageErr.Kind
}

// LocalizationKey returns the catalog key carried by err, or "".
func LocalizationKey(err error) string {
	var pageErr Error
	if err == nil || !stderrors.As(err, &pageErr) {
		return ""
	}
	return strings.TrimSpace(pageErr.Key)
}

// HTTPStatus maps err to a response status. nil is 200; untyped errors
// and unknown kinds are 500.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if status, ok := kindStatus[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
