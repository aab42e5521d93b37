// Package euroleague is a client for the Euroleague Basketball API. It groups
// the API's three REST generations plus the live game feeds behind one
// facade:
//
//	client, err := euroleague.NewClient(euroleague.WithCredentials(authn))
//	...
//	clubs, err := client.V2.Clubs.List(ctx, euroleague.ClubListParams{})
//	pbp, err := client.Live.PlayByPlay(ctx, "E2025", 241)
//
// V1 endpoints are the legacy query-parameter style, V2 the resource-path
// style, V3 the statistics surface. All of them return the response body as
// raw JSON for the caller to decode; the live feeds additionally offer typed
// models for play-by-play and shot chart data.
package euroleague

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/courtside/euroleague-go/pkg/transport"
)

// Client is the top-level API facade. It is safe for concurrent use.
type Client struct {
	http *transport.Client

	V1   *V1Service
	V2   *V2Service
	V3   *V3Service
	Live *LiveService
}

type clientConfig struct {
	baseURL       string
	transportOpts []transport.Option
}

// Option configures a Client.
type Option func(*clientConfig)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.baseURL = baseURL }
}

// WithTimeout sets the per-request timeout (default 30s).
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithTimeout(timeout))
	}
}

// WithMaxRetries sets the attempt count for transient failures (default 3).
func WithMaxRetries(maxRetries int) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithMaxRetries(maxRetries))
	}
}

// WithCredentials attaches bearer credentials, typically an
// *auth.Authenticator, to every request.
func WithCredentials(creds transport.Credentials) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithCredentials(creds))
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithHTTPClient(client))
	}
}

// WithLogger attaches a structured logger to the transport.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.transportOpts = append(c.transportOpts, transport.WithLogger(logger))
	}
}

// NewClient creates a client against the production API host.
func NewClient(opts ...Option) (*Client, error) {
	cfg := clientConfig{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}

	tc, err := transport.New(cfg.baseURL, cfg.transportOpts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		http: tc,
		V1:   newV1Service(tc),
		V2:   newV2Service(tc),
		V3:   newV3Service(tc),
		Live: &LiveService{http: tc},
	}, nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() {
	c.http.Close()
}
