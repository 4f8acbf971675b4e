package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

type ErrorCode string

const (
	ErrCodeUpstreamStatus     ErrorCode = "UPSTREAM_STATUS"
	ErrCodeUpstreamTransport  ErrorCode = "UPSTREAM_TRANSPORT"
	ErrCodeUpstreamMalformed  ErrorCode = "UPSTREAM_MALFORMED"
	ErrCodeNoResults          ErrorCode = "NO_RESULTS"
	ErrCodeExpressionRejected ErrorCode = "EXPRESSION_REJECTED"
	ErrCodeExpressionInvalid  ErrorCode = "EXPRESSION_INVALID"
)

// StandardError is the internal failure carrier. It is logged, never shown to the user.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	cause     error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// Fields flattens the error for structured logging.
func (e *StandardError) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"errorCode": string(e.Code),
		"message":   e.Message,
	}
	if e.Details != "" {
		fields["details"] = e.Details
	}
	for k, v := range e.Metadata {
		fields[k] = v
	}
	return fields
}

func NewUpstreamStatusError(provider string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamStatus,
		Message:   "Provider returned a non-OK status",
		Details:   fmt.Sprintf("provider: %s, status: %d", provider, status),
		Metadata:  map[string]interface{}{"provider": provider, "status": status},
		Timestamp: time.Now().UTC(),
	}
}

func NewUpstreamTransportError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTransport,
		Message:   "Provider request failed",
		Details:   err.Error(),
		Metadata:  map[string]interface{}{"provider": provider},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewUpstreamMalformedError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamMalformed,
		Message:   "Provider response could not be parsed",
		Details:   err.Error(),
		Metadata:  map[string]interface{}{"provider": provider},
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

func NewNoResultsError(provider, query string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoResults,
		Message:   "Provider returned no results",
		Details:   fmt.Sprintf("provider: %s, query: %s", provider, query),
		Metadata:  map[string]interface{}{"provider": provider},
		Timestamp: time.Now().UTC(),
	}
}

func NewExpressionRejectedError(expression string) *StandardError {
	return &StandardError{
		Code:      ErrCodeExpressionRejected,
		Message:   "Expression contains characters outside the arithmetic whitelist",
		Details:   fmt.Sprintf("expression: %q", expression),
		Timestamp: time.Now().UTC(),
	}
}

func NewExpressionInvalidError(expression string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExpressionInvalid,
		Message:   "Expression could not be evaluated",
		Details:   fmt.Sprintf("expression: %q, error: %s", expression, err.Error()),
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// CodeOf returns the code of the first StandardError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// LogFields returns the structured fields of the first StandardError in err's chain,
// or just the error text for anything else. The map is fresh and safe to extend.
func LogFields(err error) map[string]interface{} {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Fields()
	}
	return map[string]interface{}{"error": err.Error()}
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}
