package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS256Challenge(t *testing.T) {
	t.Parallel()

	t.Run("matches RFC 7636 derivation", func(t *testing.T) {
		t.Parallel()

		verifier := "test_verifier"
		sum := sha256.Sum256([]byte(verifier))
		want := base64.RawURLEncoding.EncodeToString(sum[:])

		require.Equal(t, want, S256Challenge(verifier))
	})

	t.Run("is always 43 unpadded base64url chars", func(t *testing.T) {
		t.Parallel()

		for _, verifier := range []string{"", "a", "test_verifier", "some-much-longer-verifier-string-with-more-entropy"} {
			challenge := S256Challenge(verifier)
			require.Len(t, challenge, 43)
			require.NotContains(t, challenge, "=")
			require.NotContains(t, challenge, "+")
			require.NotContains(t, challenge, "/")
		}
	})

	t.Run("deterministic per verifier", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, S256Challenge("v1"), S256Challenge("v1"))
		require.NotEqual(t, S256Challenge("v1"), S256Challenge("v2"))
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	verifier, err := generateToken(verifierSize)
	require.NoError(t, err)
	require.Len(t, verifier, 86) // 64 bytes -> 86 unpadded base64url chars

	state, err := generateToken(stateSize)
	require.NoError(t, err)
	require.Len(t, state, 43)

	other, err := generateToken(verifierSize)
	require.NoError(t, err)
	require.NotEqual(t, verifier, other)

	_, err = base64.RawURLEncoding.DecodeString(verifier)
	require.NoError(t, err)
}
