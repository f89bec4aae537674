package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeGenerationFailure  = "GENERATION_FAILURE"
	CodeSchemaMismatch     = "SCHEMA_MISMATCH"
	CodeInternal           = "INTERNAL"
	CodeCache              = "CACHE_ERROR"
)

type InsightError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *InsightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InsightError) Unwrap() error {
	return e.Cause
}

func NewInsightError(message, code string, statusCode int, context map[string]any) *InsightError {
	return &InsightError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *InsightError) WithCause(cause error) *InsightError {
	e.Cause = cause
	return e
}

// NewInvalidArgument reports caller input the core cannot work with.
func NewInvalidArgument(message string, context map[string]any) *InsightError {
	return NewInsightError(message, CodeInvalidArgument, 400, context)
}

// NewInsufficientText is the InvalidArgument raised when text is too short to fingerprint.
func NewInsufficientText(length, minimum int) *InsightError {
	return NewInvalidArgument(
		fmt.Sprintf("Not enough text to analyze (minimum %d characters)", minimum),
		map[string]any{
			"length":  length,
			"minimum": minimum,
		},
	)
}

func NewServiceUnavailable(message, service string) *InsightError {
	return NewInsightError(message, CodeServiceUnavailable, 503, map[string]any{
		"service": service,
	})
}

func NewGenerationFailure(message, provider string, cause error) *InsightError {
	return NewInsightError(message, CodeGenerationFailure, 502, map[string]any{
		"provider": provider,
	}).WithCause(cause)
}

func NewSchemaMismatch(message string, cause error) *InsightError {
	return NewInsightError(message, CodeSchemaMismatch, 422, nil).WithCause(cause)
}

func NewInternal(message, operation string, cause error) *InsightError {
	return NewInsightError(message, CodeInternal, 500, map[string]any{
		"operation": operation,
	}).WithCause(cause)
}

// NewCacheError reports a failed cache operation. Callers treat it as a miss.
func NewCacheError(message, operation, key string, cause error) *InsightError {
	return NewInsightError(message, CodeCache, 500, map[string]any{
		"operation": operation,
		"key":       key,
	}).WithCause(cause)
}

// CodeOf returns the taxonomy code carried by err, or CodeInternal for foreign errors.
func CodeOf(err error) string {
	var ie *InsightError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return CodeInternal
}

// StatusOf returns the HTTP-style status carried by err.
func StatusOf(err error) int {
	var ie *InsightError
	if errors.As(err, &ie) && ie.StatusCode > 0 {
		return ie.StatusCode
	}
	return 500
}

// Is reports whether err carries the given taxonomy code.
func Is(err error, code string) bool {
	var ie *InsightError
	return errors.As(err, &ie) && ie.Code == code
}
