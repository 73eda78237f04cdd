package genai

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a remote-call failure so callers can react to the
// specific cause instead of one opaque error.
type ErrorKind string

const (
	KindNetwork      ErrorKind = "network"
	KindUnauthorized ErrorKind = "unauthorized"
	KindQuota        ErrorKind = "quota"
	KindNotFound     ErrorKind = "not_found"
	KindUnavailable  ErrorKind = "unavailable"
	KindTimeout      ErrorKind = "timeout"
)

// APIError is a typed generative-AI failure.
type APIError struct {
	Kind    ErrorKind
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("genai %s: %s", e.Kind, e.Message)
}

func errorFromStatus(status int, message string) *APIError {
	kind := KindUnavailable
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusTooManyRequests:
		kind = KindQuota
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &APIError{Kind: kind, Message: fmt.Sprintf("status %d: %s", status, truncate(message, 200))}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
