// Package apierr defines the typed error taxonomy for the Euroleague API
// client. Every failure surfaced by the transport or the authenticator is one
// of these types, so callers can match on the kind they care about with
// errors.As and fall back to generic handling for the rest.
package apierr

import (
	"errors"
	"fmt"
)

// ValidationError reports a request-shape problem (HTTP 400).
type ValidationError struct {
	// Message is the human-readable description from the response body.
	Message string

	// Details contains field-specific validation errors, when the server
	// provides them.
	Details map[string]any
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return e.Message }

// AuthenticationError reports a credential problem: an HTTP 401 from the
// server, or a locally detected missing/expired token (no network call made).
type AuthenticationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError reports a permission problem (HTTP 403).
type AuthorizationError struct {
	Message string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError reports a missing resource (HTTP 404).
type NotFoundError struct {
	// ResourceType is the kind of resource (e.g. "Club"). Defaults to
	// "Resource" when the body omits it.
	ResourceType string

	// Identifier is the looked-up key (e.g. "BAR"). Defaults to "unknown".
	Identifier string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.ResourceType, e.Identifier)
}

// RateLimitError reports an HTTP 429. The client never retries these itself;
// RetryAfter is surfaced so the caller can schedule its own retry.
type RateLimitError struct {
	// RetryAfter is the wait hint in seconds from the Retry-After header.
	// Zero means the server did not provide one.
	RetryAfter int
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", e.RetryAfter)
	}
	return "Rate limit exceeded"
}

// APIError is the generic fallback for any other non-2xx status, and for
// responses whose body is not valid JSON.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Message is the human-readable description.
	Message string

	// ResponseBody is the parsed JSON body, when it was an object.
	ResponseBody map[string]any

	// RequestID is the server-side correlation ID from the X-Request-Id
	// header, when present.
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// NetworkError reports a connection-level failure (DNS, refused connection,
// reset). It is only raised after the transport's retries are exhausted; the
// last underlying cause is chained via Unwrap.
type NetworkError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NetworkError) Error() string { return e.Message }

// Unwrap returns the underlying cause for errors.Is/errors.As chains.
func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError reports a request timeout. It is a NetworkError subtype:
// IsNetwork matches both. Raised only after retries are exhausted.
type TimeoutError struct {
	NetworkError
}

// IsNetwork reports whether err is a connection-level failure, including
// timeouts.
func IsNetwork(err error) bool {
	var ne *NetworkError
	var te *TimeoutError
	return errors.As(err, &ne) || errors.As(err, &te)
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// IsAuthentication reports whether err is a credential problem (server 401 or
// locally detected missing/expired token).
func IsAuthentication(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}

// IsRateLimited reports whether err is an HTTP 429.
func IsRateLimited(err error) bool {
	var re *RateLimitError
	return errors.As(err, &re)
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
