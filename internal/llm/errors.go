package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a completion produced no usable text
type ErrorKind string

const (
	KindNotConfigured ErrorKind = "not_configured"
	KindTimeout       ErrorKind = "timeout"
	KindHTTP          ErrorKind = "http"
	KindEmpty         ErrorKind = "empty"
	KindTransport     ErrorKind = "transport"
)

// maxErrorBodyLength caps how much of a provider error body is kept
const maxErrorBodyLength = 500

// CompletionError is returned by every failed completion. StatusCode is set only for
// KindHTTP.
type CompletionError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *CompletionError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// ErrNotConfigured is returned when no API key was provided
var ErrNotConfigured = &CompletionError{Kind: KindNotConfigured, Message: "LLM_API_KEY not set"}

// NewEmptyCompletionError reports a successful call that produced no text
func NewEmptyCompletionError() *CompletionError {
	return &CompletionError{Kind: KindEmpty, Message: "completion returned no text"}
}

// KindOf extracts the kind of a completion failure. Errors that did not come from
// this package are reported as transport failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var completionErr *CompletionError
	if errors.As(err, &completionErr) {
		return completionErr.Kind
	}
	return KindTransport
}

func truncate(s string) string {
	if len(s) <= maxErrorBodyLength {
		return s
	}
	return s[:maxErrorBodyLength]
}
