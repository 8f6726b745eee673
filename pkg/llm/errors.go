package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies a completion failure.
type ErrorType string

const (
	ErrTypeAuth       ErrorType = "auth"
	ErrTypeRateLimit  ErrorType = "rate_limit"
	ErrTypeTimeout    ErrorType = "timeout"
	ErrTypeConnection ErrorType = "connection"
	ErrTypeServer     ErrorType = "server"
	ErrTypeUnknown    ErrorType = "unknown"
)

// Error is a structured LLM error with classification.
type Error struct {
	Type      ErrorType
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable implements retry.RetryableError without importing retry.
func (e *Error) IsRetryable() bool {
	return e.Retryable
}

// ClassifyError categorizes a transport error into a structured Error so
// the retry policy can decide whether another attempt is worthwhile.
func ClassifyError(err error) *Error {
	if err == nil {
		return nil
	}

	var llmErr *Error
	if errors.As(err, &llmErr) {
		return llmErr
	}

	lower := strings.ToLower(err.Error())

	switch {
	case strings.Contains(lower, "401") || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key") || strings.Contains(lower, "incorrect api key"):
		return &Error{Type: ErrTypeAuth, Message: "authentication failed", Retryable: false, Cause: err}
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "too many requests"):
		return &Error{Type: ErrTypeRateLimit, Message: "rate limited", Retryable: true, Cause: err}
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out") ||
		strings.Contains(lower, "deadline exceeded"):
		return &Error{Type: ErrTypeTimeout, Message: "request timed out", Retryable: true, Cause: err}
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "connection reset") || strings.Contains(lower, "broken pipe"):
		return &Error{Type: ErrTypeConnection, Message: "connection failed", Retryable: true, Cause: err}
	case strings.Contains(lower, "500") || strings.Contains(lower, "502") ||
		strings.Contains(lower, "503") || strings.Contains(lower, "504") ||
		strings.Contains(lower, "service unavailable"):
		return &Error{Type: ErrTypeServer, Message: "provider error", Retryable: true, Cause: err}
	}

	return &Error{Type: ErrTypeUnknown, Message: "completion failed", Retryable: false, Cause: err}
}
