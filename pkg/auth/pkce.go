package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

const (
	// verifierSize is the entropy of the PKCE code verifier in bytes
	// (86 base64url chars), per RFC 7636's recommended high-entropy range.
	verifierSize = 64

	// stateSize is the entropy of the generated CSRF state nonce in bytes
	// (43 base64url chars).
	stateSize = 32
)

// generateToken creates a cryptographically secure random token of size
// bytes, base64url-encoded without padding.
func generateToken(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// S256Challenge derives the PKCE code challenge from a verifier:
// base64url(SHA-256(verifier)) with padding stripped. The result is always 43
// characters.
func S256Challenge(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
