// Package auth implements the OAuth2 Authorization Code flow with PKCE for
// the Euroleague API, plus pluggable persistence for the resulting bearer
// token.
//
// The Authenticator never refreshes a token implicitly: AuthHeader fails on
// an expired token instead of hiding a network call inside a header-building
// helper. Callers that want auto-refresh orchestrate it themselves by calling
// Refresh when AuthHeader reports expiry.
//
// The state value returned by AuthorizationURL is a CSRF nonce. The library
// does not verify it against the value that comes back on the redirect — that
// check belongs to the caller handling the redirect.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/courtside/euroleague-go/pkg/apierr"
)

// Default OAuth2 endpoints and parameters for the Euroleague API.
const (
	DefaultAuthURL     = "https://auth.euroleague.net/oauth2/authorize"
	DefaultTokenURL    = "https://auth.euroleague.net/oauth2/token"
	DefaultScope       = "euroleagueapi"
	DefaultRedirectURI = "http://localhost:8080/callback"
)

// Authenticator drives the PKCE authorization flow and owns exactly one token
// Storage. It holds no long-lived connection; each token operation is a
// short, self-contained HTTP exchange.
type Authenticator struct {
	clientID    string
	redirectURI string
	authURL     string
	tokenURL    string
	scope       string
	storage     Storage
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithRedirectURI overrides the redirect URI registered for the client.
func WithRedirectURI(uri string) Option {
	return func(a *Authenticator) { a.redirectURI = uri }
}

// WithStorage sets the token persistence backend (default: in-memory).
func WithStorage(storage Storage) Option {
	return func(a *Authenticator) { a.storage = storage }
}

// WithEndpoints overrides the authorization and token endpoints, mainly for
// tests against a local server.
func WithEndpoints(authURL, tokenURL string) Option {
	return func(a *Authenticator) {
		a.authURL = authURL
		a.tokenURL = tokenURL
	}
}

// WithScope overrides the requested OAuth2 scope.
func WithScope(scope string) Option {
	return func(a *Authenticator) { a.scope = scope }
}

// WithHTTPClient replaces the HTTP client used for token endpoint calls.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Authenticator) { a.httpClient = client }
}

// WithLogger attaches a structured logger. The authenticator logs flow events
// only; token values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) { a.logger = logger }
}

// NewAuthenticator creates a PKCE authenticator for the given OAuth2 client
// ID with in-memory token storage and the production Euroleague endpoints.
func NewAuthenticator(clientID string, opts ...Option) *Authenticator {
	a := &Authenticator{
		clientID:    clientID,
		redirectURI: DefaultRedirectURI,
		authURL:     DefaultAuthURL,
		tokenURL:    DefaultTokenURL,
		scope:       DefaultScope,
		storage:     NewMemoryStorage(),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AuthorizationURL builds the URL to send the user's browser to, with a fresh
// PKCE challenge. It returns the URL, the CSRF state (generated when the
// argument is empty) and the code verifier.
//
// The verifier is single-use: it must be round-tripped unchanged into the
// ExchangeCode call for the code this URL produces.
func (a *Authenticator) AuthorizationURL(state string) (authURL, outState, codeVerifier string, err error) {
	codeVerifier, err = generateToken(verifierSize)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to generate PKCE verifier: %w", err)
	}

	if state == "" {
		state, err = generateToken(stateSize)
		if err != nil {
			return "", "", "", fmt.Errorf("failed to generate state: %w", err)
		}
	}

	params := url.Values{}
	params.Set("response_type", "code")
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scope)
	params.Set("state", state)
	params.Set("code_challenge", S256Challenge(codeVerifier))
	params.Set("code_challenge_method", "S256")

	return a.authURL + "?" + params.Encode(), state, codeVerifier, nil
}

// ExchangeCode trades an authorization code (plus the verifier from the
// matching AuthorizationURL call) for a token, persisting it before
// returning.
func (a *Authenticator) ExchangeCode(ctx context.Context, code, codeVerifier string) (*TokenInfo, error) {
	data := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {a.clientID},
		"code":          {code},
		"redirect_uri":  {a.redirectURI},
		"code_verifier": {codeVerifier},
	}

	token, err := a.requestToken(ctx, "Token exchange", data, "")
	if err != nil {
		return nil, err
	}

	a.logger.Debug("authorization code exchanged", "scope", token.Scope, "expires_in", token.ExpiresIn)
	return token, nil
}

// Refresh obtains a new token using the stored refresh token, reusing the
// prior refresh token when the provider does not rotate it. The refreshed
// token replaces the stored one.
func (a *Authenticator) Refresh(ctx context.Context) (*TokenInfo, error) {
	current, err := a.storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load stored token: %w", err)
	}
	if current == nil || current.RefreshToken == "" {
		return nil, &apierr.AuthenticationError{Message: "No refresh token available. Please re-authenticate."}
	}

	data := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {a.clientID},
		"refresh_token": {current.RefreshToken},
	}

	token, err := a.requestToken(ctx, "Token refresh", data, current.RefreshToken)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("token refreshed", "expires_in", token.ExpiresIn)
	return token, nil
}

// AuthHeader returns the value for the Authorization header. It performs no
// network I/O and never refreshes: a missing or expired token is an
// AuthenticationError the caller must resolve explicitly.
func (a *Authenticator) AuthHeader() (string, error) {
	token, err := a.storage.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load stored token: %w", err)
	}
	if token == nil {
		return "", &apierr.AuthenticationError{Message: "No token available. Please authenticate first."}
	}
	if token.IsExpired() {
		return "", &apierr.AuthenticationError{Message: "Token has expired. Please refresh or re-authenticate."}
	}
	return "Bearer " + token.AccessToken, nil
}

// SetToken stores a pre-obtained token, bypassing the authorization flow.
func (a *Authenticator) SetToken(token *TokenInfo) error {
	return a.storage.Store(token)
}

// ClearToken removes the stored token.
func (a *Authenticator) ClearToken() error {
	return a.storage.Clear()
}

// tokenResponse is the token endpoint's JSON body per RFC 6749.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// requestToken POSTs a form-encoded grant to the token endpoint, converts the
// response into a TokenInfo and persists it. priorRefreshToken is carried
// over when the provider omits a new one.
func (a *Authenticator) requestToken(ctx context.Context, operation string, data url.Values, priorRefreshToken string) (*TokenInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &apierr.AuthenticationError{
			Message: fmt.Sprintf("%s failed: %s", operation, oauthErrorDescription(body)),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	token := NewTokenInfo(tr.AccessToken, tr.TokenType, tr.ExpiresIn, tr.RefreshToken, tr.Scope)
	if token.RefreshToken == "" {
		token.RefreshToken = priorRefreshToken
	}

	if err := a.storage.Store(token); err != nil {
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}
	return token, nil
}

// oauthErrorDescription extracts the provider's error_description (or error)
// from a failed token response, falling back to "Unknown error".
func oauthErrorDescription(body []byte) string {
	var payload struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(body, &payload)

	if payload.ErrorDescription != "" {
		return payload.ErrorDescription
	}
	if payload.Error != "" {
		return payload.Error
	}
	return "Unknown error"
}
