// Package transport implements the HTTP layer shared by every endpoint group
// of the Euroleague client: authenticated GETs against a fixed HTTPS base
// URL, bounded retries with exponential backoff on transient network
// failures, and classification of HTTP error responses into the typed
// taxonomy of pkg/apierr.
//
// Only infrastructure-level failures (timeouts, connection errors) are
// retried: they are likely transient and GETs are idempotent. HTTP-level
// errors reflect a definite outcome from the server and are raised
// immediately without retry; rate-limit responses carry a retry_after hint
// for the caller to act on instead.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/courtside/euroleague-go/pkg/apierr"
)

// Version is the library version reported in the User-Agent header.
const Version = "1.2.0"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultBaseDelay  = 500 * time.Millisecond
	defaultMaxDelay   = 30 * time.Second

	// bodySnippetLen bounds the raw-text excerpt attached to errors for
	// responses that are not valid JSON.
	bodySnippetLen = 200
)

// Credentials supplies the Authorization header value for outgoing requests.
// *auth.Authenticator satisfies this. A Credentials failure surfaces before
// any network call is made.
type Credentials interface {
	AuthHeader() (string, error)
}

// Params are the query parameters of one request. Entries whose value is nil
// (or a typed nil pointer) are dropped from the outgoing query string, so
// endpoint groups can pass optional filters uniformly.
type Params map[string]any

// Client performs GET requests against one base URL. It owns a single
// *http.Client whose connection pool is safe for concurrent use by multiple
// in-flight requests; callers release it with Close.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	logger     *slog.Logger
	userAgent  string
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	// sleep suspends between retries; injectable so tests count backoff
	// sleeps without waiting them out.
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-attempt request timeout (default 30s). The timeout
// applies to each attempt, not to the sum of all retries.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithMaxRetries sets the total number of attempts per request (default 3).
func WithMaxRetries(maxRetries int) Option {
	return func(c *Client) { c.maxRetries = maxRetries }
}

// WithBackoff overrides the retry backoff parameters. The delay before retry
// i+1 is min(base * 2^i, max).
func WithBackoff(base, max time.Duration) Option {
	return func(c *Client) {
		c.baseDelay = base
		c.maxDelay = max
	}
}

// WithCredentials attaches bearer credentials to every request.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.creds = creds }
}

// WithHTTPClient replaces the underlying HTTP client. The provided client
// must be safe for concurrent use.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.httpClient = client }
}

// WithLogger attaches a structured logger for retry and completion events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New creates a transport for the given base URL. Non-HTTPS base URLs are
// rejected here, at construction time, rather than leaking credentials over
// plaintext later. A trailing slash is stripped.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("transport: invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "https" {
		return nil, fmt.Errorf("transport: base URL must use https, got %q", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("transport: base URL %q has no host", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:  "euroleague-go/" + Version,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		maxDelay:   defaultMaxDelay,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Get performs one logical GET against path, retrying transient failures, and
// returns the response body as raw JSON. Non-2xx statuses surface as typed
// errors from pkg/apierr; an empty body decodes as an empty object.
func (c *Client) Get(ctx context.Context, path string, params Params) (json.RawMessage, error) {
	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if query := encodeParams(params); query != "" {
		fullURL += "?" + query
	}

	var authHeader string
	if c.creds != nil {
		header, err := c.creds.AuthHeader()
		if err != nil {
			return nil, err
		}
		authHeader = header
	}

	requestID := ulid.Make().String()
	start := time.Now()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, c.backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		body, status, header, err := c.do(ctx, fullURL, authHeader, requestID)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				// The caller's context is done; further attempts cannot succeed.
				if errors.Is(ctxErr, context.DeadlineExceeded) {
					return nil, c.timeoutError(err)
				}
				return nil, ctxErr
			}

			lastErr = err
			if attempt == c.maxRetries-1 {
				break
			}
			c.logger.Debug("request failed, retrying",
				"request_id", requestID,
				"attempt", attempt,
				"delay", c.backoff(attempt),
				"error", err,
			)
			continue
		}

		if len(body) == 0 {
			body = []byte("{}")
		}
		if !json.Valid(body) {
			return nil, &apierr.APIError{
				StatusCode: status,
				Message:    "Invalid JSON response: " + snippet(body),
			}
		}

		if err := apierr.Classify(status, body, header); err != nil {
			return nil, err
		}

		c.logger.Debug("request completed",
			"request_id", requestID,
			"status", status,
			"attempts", attempt+1,
			"elapsed", time.Since(start),
		)
		return json.RawMessage(body), nil
	}

	if isTimeout(lastErr) {
		return nil, c.timeoutError(lastErr)
	}
	return nil, &apierr.NetworkError{
		Message: fmt.Sprintf("Request failed after %d retries: %v", c.maxRetries, lastErr),
		Err:     lastErr,
	}
}

// GetJSON performs Get and decodes the response into v.
func (c *Client) GetJSON(ctx context.Context, path string, params Params, v any) error {
	raw, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Close releases idle connections held by the underlying pool. Callers must
// close the client when done with it; leaking it leaks sockets.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// do performs a single attempt.
func (c *Client) do(ctx context.Context, fullURL, authHeader, requestID string) ([]byte, int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, nil, err
	}
	return body, resp.StatusCode, resp.Header, nil
}

// backoff returns the delay between attempt i and i+1: min(base * 2^i, max).
func (c *Client) backoff(attempt int) time.Duration {
	delay := c.baseDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
		if delay >= c.maxDelay {
			return c.maxDelay
		}
	}
	if delay > c.maxDelay {
		return c.maxDelay
	}
	return delay
}

func (c *Client) timeoutError(cause error) *apierr.TimeoutError {
	return &apierr.TimeoutError{
		NetworkError: apierr.NetworkError{
			Message: fmt.Sprintf("Request timed out after %s", c.timeout),
			Err:     cause,
		},
	}
}

// isTimeout reports whether err is a timeout rather than a general
// connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// sleepContext sleeps for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// snippet truncates a non-JSON body for error messages.
func snippet(body []byte) string {
	s := string(body)
	if len(s) > bodySnippetLen {
		return s[:bodySnippetLen]
	}
	return s
}
