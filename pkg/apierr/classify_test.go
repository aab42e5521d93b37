package apierr

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySuccessStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []int{200, 201, 204, 299} {
		require.NoError(t, Classify(status, []byte(`{}`), http.Header{}), "status %d", status)
	}
}

func TestClassifyValidation(t *testing.T) {
	t.Parallel()

	body := []byte(`{"message":"seasonCode is required","details":{"seasonCode":"missing"}}`)
	err := Classify(http.StatusBadRequest, body, http.Header{})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "seasonCode is required", ve.Message)
	require.Equal(t, map[string]any{"seasonCode": "missing"}, ve.Details)
}

func TestClassifyAuthentication(t *testing.T) {
	t.Parallel()

	err := Classify(http.StatusUnauthorized, []byte(`{"error":"invalid_token"}`), http.Header{})
	require.True(t, IsAuthentication(err))
	require.EqualError(t, err, "invalid_token")
}

func TestClassifyAuthorization(t *testing.T) {
	t.Parallel()

	err := Classify(http.StatusForbidden, []byte(`{"message":"insufficient scope"}`), http.Header{})
	var ae *AuthorizationError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, "insufficient scope", ae.Message)
}

func TestClassifyNotFound(t *testing.T) {
	t.Parallel()

	t.Run("with resource fields", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"message":"not found","resource":"Club","identifier":"BAR"}`)
		err := Classify(http.StatusNotFound, body, http.Header{})

		require.True(t, IsNotFound(err))
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "Club", nf.ResourceType)
		require.Equal(t, "BAR", nf.Identifier)
		require.EqualError(t, err, "Club not found: BAR")
	})

	t.Run("defaults when body omits fields", func(t *testing.T) {
		t.Parallel()

		err := Classify(http.StatusNotFound, []byte(`{}`), http.Header{})
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		require.EqualError(t, nf, "Resource not found: unknown")
	})
}

func TestClassifyRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("with retry hint", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("Retry-After", "30")
		err := Classify(http.StatusTooManyRequests, []byte(`{}`), header)

		require.True(t, IsRateLimited(err))
		var re *RateLimitError
		require.ErrorAs(t, err, &re)
		require.Equal(t, 30, re.RetryAfter)
		require.EqualError(t, re, "Rate limit exceeded. Retry after 30 seconds")
	})

	t.Run("missing or malformed header", func(t *testing.T) {
		t.Parallel()

		for _, value := range []string{"", "soon", "-5"} {
			header := http.Header{}
			if value != "" {
				header.Set("Retry-After", value)
			}
			err := Classify(http.StatusTooManyRequests, []byte(`{}`), header)

			var re *RateLimitError
			require.ErrorAs(t, err, &re)
			require.Zero(t, re.RetryAfter, "Retry-After=%q", value)
			require.EqualError(t, re, "Rate limit exceeded")
		}
	})
}

func TestClassifyFallback(t *testing.T) {
	t.Parallel()

	t.Run("server error with request id", func(t *testing.T) {
		t.Parallel()

		header := http.Header{}
		header.Set("X-Request-Id", "01JFG6ZRAEXAMPLE0000000000")
		err := Classify(http.StatusInternalServerError, []byte(`{"message":"boom"}`), header)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 500, apiErr.StatusCode)
		require.Equal(t, "boom", apiErr.Message)
		require.Equal(t, "01JFG6ZRAEXAMPLE0000000000", apiErr.RequestID)
		require.EqualError(t, apiErr, "[500] boom")
	})

	t.Run("non-object body yields default message", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`[]`, `"oops"`, ``} {
			err := Classify(http.StatusBadGateway, []byte(body), http.Header{})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, "Unknown error", apiErr.Message, "body=%q", body)
		}
	})

	t.Run("message preferred over error key", func(t *testing.T) {
		t.Parallel()

		err := Classify(http.StatusServiceUnavailable, []byte(`{"message":"primary","error":"secondary"}`), http.Header{})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "primary", apiErr.Message)
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	timeout := &TimeoutError{NetworkError: NetworkError{Message: "Request timed out after 30s"}}
	network := &NetworkError{Message: "connection refused"}

	require.True(t, IsTimeout(timeout))
	require.False(t, IsTimeout(network))
	require.True(t, IsNetwork(timeout), "timeouts are network failures")
	require.True(t, IsNetwork(network))
	require.False(t, IsNetwork(&AuthenticationError{Message: "nope"}))
}
