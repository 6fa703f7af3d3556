package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies the failures the SDK can surface
type Kind string

const (
	// KindValidation indicates malformed or out-of-range caller input,
	// detected before any network access
	KindValidation Kind = "VALIDATION"

	// KindAuthentication indicates the provider rejected the credential (HTTP 401/403)
	KindAuthentication Kind = "AUTHENTICATION"

	// KindRateLimit indicates the provider throttled the request (HTTP 429)
	KindRateLimit Kind = "RATE_LIMIT"

	// KindAPI indicates any other request failure: HTTP >= 400, timeout,
	// connection failure, or an unparseable response body
	KindAPI Kind = "API"
)

// Error is the single error type returned by every SDK operation
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap implements the unwrap interface
func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(message string) *Error {
	return &Error{
		Kind:    KindAuthentication,
		Message: message,
	}
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(message string) *Error {
	return &Error{
		Kind:    KindRateLimit,
		Message: message,
	}
}

// NewAPIError creates a new API error wrapping an underlying cause
func NewAPIError(message string, err error) *Error {
	return &Error{
		Kind:    KindAPI,
		Message: message,
		Err:     err,
	}
}

// NewAPIStatusError creates a new API error for a failed HTTP status,
// carrying the status code and the raw response body text
func NewAPIStatusError(statusCode int, body string) *Error {
	return &Error{
		Kind:       KindAPI,
		Message:    fmt.Sprintf("request failed with status %d: %s", statusCode, body),
		StatusCode: statusCode,
		Body:       body,
	}
}

func isKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsValidation reports whether err is a validation error
func IsValidation(err error) bool { return isKind(err, KindValidation) }

// IsAuthentication reports whether err is an authentication error
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsRateLimit reports whether err is a rate limit error
func IsRateLimit(err error) bool { return isKind(err, KindRateLimit) }

// IsAPI reports whether err is a generic API error
func IsAPI(err error) bool { return isKind(err, KindAPI) }
