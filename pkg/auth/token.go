package auth

import "time"

// expiryBuffer is subtracted from a token's lifetime when checking expiry, so
// a request never races the real expiry mid-flight.
const expiryBuffer = 60 * time.Second

// TokenInfo is an OAuth2 bearer token plus the metadata needed to compute its
// expiry after a process restart. ObtainedAt is set once when the token is
// created (or deserialized) and never mutated; expiry is always derived from
// the stored fields, never cached.
type TokenInfo struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	ObtainedAt   time.Time `json:"obtained_at"`
}

// NewTokenInfo builds a TokenInfo obtained now, applying the OAuth2 defaults
// for fields the provider may omit (token_type "Bearer", expires_in 3600).
func NewTokenInfo(accessToken, tokenType string, expiresIn int, refreshToken, scope string) *TokenInfo {
	if tokenType == "" {
		tokenType = "Bearer"
	}
	if expiresIn == 0 {
		expiresIn = 3600
	}
	return &TokenInfo{
		AccessToken:  accessToken,
		TokenType:    tokenType,
		ExpiresIn:    expiresIn,
		RefreshToken: refreshToken,
		Scope:        scope,
		ObtainedAt:   time.Now().UTC(),
	}
}

// ExpiresAt returns the moment the token is considered expired, including the
// 60-second safety buffer.
func (t *TokenInfo) ExpiresAt() time.Time {
	return t.ObtainedAt.Add(time.Duration(t.ExpiresIn)*time.Second - expiryBuffer)
}

// IsExpired reports whether the token is past its buffered expiry. This is a
// pure function of the stored fields, recomputed on every check.
func (t *TokenInfo) IsExpired() bool {
	return !time.Now().Before(t.ExpiresAt())
}
