// Package generr provides structured error classification for text-generation
// backend interactions.
//
// Every classified error is fatal to the pipeline run: the orchestrator never
// retries a transport or provider failure, only quality-score failures drive
// the revision loop.
package generr

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of generation errors.
type ErrorType int8

const (
	// ErrorTypeProviderUnavailable means no client/credential is configured
	// for the requested provider.
	ErrorTypeProviderUnavailable ErrorType = iota
	// ErrorTypeTransport represents network or API failures (timeouts, 5xx,
	// connection reset). Timeouts are not distinguished from other transport
	// failures.
	ErrorTypeTransport
	// ErrorTypeAuth represents authentication failures (401/403, bad API key).
	ErrorTypeAuth
	// ErrorTypeEmptyResponse represents an HTTP 200 with no usable content.
	ErrorTypeEmptyResponse
	// ErrorTypeBadPrompt represents malformed requests (too long, rejected
	// by provider policy).
	ErrorTypeBadPrompt
	// ErrorTypeUnknown is the default for unclassified errors.
	ErrorTypeUnknown
)

// String returns the string representation of the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeProviderUnavailable:
		return "provider_unavailable"
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeAuth:
		return "auth"
	case ErrorTypeEmptyResponse:
		return "empty_response"
	case ErrorTypeBadPrompt:
		return "bad_prompt"
	case ErrorTypeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Error represents a classified generation error.
type Error struct {
	Err      error     // Wrapped underlying error
	Message  string    // Human-readable error message
	Provider string    // Provider identifier the call targeted
	Type     ErrorType // Classified error type
}

// Error implements the error interface.
func (e *Error) Error() string {
	provider := e.Provider
	if provider == "" {
		provider = "generation"
	}
	if e.Message != "" {
		return fmt.Sprintf("%s error (%s): %s", provider, e.Type.String(), e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error (%s): %v", provider, e.Type.String(), e.Err)
	}
	return fmt.Sprintf("%s error (%s)", provider, e.Type.String())
}

// Unwrap returns the underlying error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if an error is of a specific type.
func Is(err error, errorType ErrorType) bool {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Type == errorType
	}
	return false
}

// TypeOf returns the error type of an error, or ErrorTypeUnknown if not classified.
func TypeOf(err error) ErrorType {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Type
	}
	return ErrorTypeUnknown
}

// New creates a new classified generation error.
func New(errorType ErrorType, provider, message string) *Error {
	return &Error{
		Type:     errorType,
		Provider: provider,
		Message:  message,
	}
}

// Wrap creates a new classified generation error wrapping another error.
func Wrap(errorType ErrorType, provider string, cause error, message string) *Error {
	return &Error{
		Type:     errorType,
		Provider: provider,
		Err:      cause,
		Message:  message,
	}
}

// IsProviderUnavailable reports whether the error indicates a provider with
// no configured credential or client.
func IsProviderUnavailable(err error) bool {
	return Is(err, ErrorTypeProviderUnavailable)
}
