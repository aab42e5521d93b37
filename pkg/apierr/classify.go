package apierr

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Classify maps an HTTP response to the typed error taxonomy. It returns nil
// for 2xx statuses. The body is the raw (already validated) JSON response;
// non-object bodies are tolerated and simply yield the default messages.
//
// Classification errors are deterministic outcomes from the server and are
// never retried by the transport.
func Classify(statusCode int, body []byte, header http.Header) error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	var payload map[string]any
	// Best effort: arrays, scalars and empty bodies leave payload nil.
	_ = json.Unmarshal(body, &payload)

	message := extractMessage(payload)

	switch statusCode {
	case http.StatusBadRequest:
		return &ValidationError{Message: message, Details: extractDetails(payload)}
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: message}
	case http.StatusForbidden:
		return &AuthorizationError{Message: message}
	case http.StatusNotFound:
		return &NotFoundError{
			ResourceType: stringField(payload, "resource", "Resource"),
			Identifier:   stringField(payload, "identifier", "unknown"),
		}
	case http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfterSeconds(header)}
	default:
		return &APIError{
			StatusCode:   statusCode,
			Message:      message,
			ResponseBody: payload,
			RequestID:    header.Get("X-Request-Id"),
		}
	}
}

// extractMessage pulls the human-readable message from a response body,
// preferring "message" over "error" and falling back to "Unknown error".
func extractMessage(payload map[string]any) string {
	if s, ok := payload["message"].(string); ok && s != "" {
		return s
	}
	if s, ok := payload["error"].(string); ok && s != "" {
		return s
	}
	return "Unknown error"
}

func extractDetails(payload map[string]any) map[string]any {
	if details, ok := payload["details"].(map[string]any); ok {
		return details
	}
	return nil
}

func stringField(payload map[string]any, key, fallback string) string {
	if s, ok := payload[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// retryAfterSeconds parses the Retry-After header as delay-seconds. The
// HTTP-date form is not produced by the upstream API and is ignored.
func retryAfterSeconds(header http.Header) int {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return seconds
}
