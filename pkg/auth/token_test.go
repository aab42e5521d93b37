package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTokenInfoDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills provider omissions", func(t *testing.T) {
		t.Parallel()

		token := NewTokenInfo("abc", "", 0, "", "")
		require.Equal(t, "Bearer", token.TokenType)
		require.Equal(t, 3600, token.ExpiresIn)
		require.WithinDuration(t, time.Now().UTC(), token.ObtainedAt, 2*time.Second)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		t.Parallel()

		token := NewTokenInfo("abc", "MAC", 7200, "refresh-1", "euroleagueapi")
		require.Equal(t, "MAC", token.TokenType)
		require.Equal(t, 7200, token.ExpiresIn)
		require.Equal(t, "refresh-1", token.RefreshToken)
		require.Equal(t, "euroleagueapi", token.Scope)
	})
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	t.Run("fresh token is not expired", func(t *testing.T) {
		t.Parallel()

		token := NewTokenInfo("abc", "Bearer", 3600, "", "")
		require.False(t, token.IsExpired())
	})

	t.Run("expiry includes the safety buffer", func(t *testing.T) {
		t.Parallel()

		// Lifetime shorter than the buffer: already expired at creation.
		token := NewTokenInfo("abc", "Bearer", 30, "", "")
		require.True(t, token.IsExpired())
	})

	t.Run("boundary sits at lifetime minus buffer", func(t *testing.T) {
		t.Parallel()

		token := &TokenInfo{
			AccessToken: "abc",
			ExpiresIn:   3600,
			ObtainedAt:  time.Now().UTC().Add(-3600*time.Second + expiryBuffer + time.Minute),
		}
		require.False(t, token.IsExpired())

		token.ObtainedAt = time.Now().UTC().Add(-3600*time.Second + expiryBuffer - time.Second)
		require.True(t, token.IsExpired())
	})

	t.Run("expiry is recomputed from stored fields", func(t *testing.T) {
		t.Parallel()

		obtained := time.Date(2026, 1, 15, 20, 30, 0, 0, time.UTC)
		token := &TokenInfo{AccessToken: "abc", ExpiresIn: 3600, ObtainedAt: obtained}
		require.Equal(t, obtained.Add(3600*time.Second-expiryBuffer), token.ExpiresAt())
	})
}

func TestTokenSerializationRoundTrip(t *testing.T) {
	t.Parallel()

	token := NewTokenInfo("abc", "Bearer", 120, "refresh-1", "euroleagueapi")
	data, err := json.Marshal(token)
	require.NoError(t, err)
	require.Contains(t, string(data), `"obtained_at"`)

	var restored TokenInfo
	require.NoError(t, json.Unmarshal(data, &restored))

	// Expiry state must survive the round trip, not reset to "fresh".
	require.Equal(t, token.ExpiresAt(), restored.ExpiresAt())
	require.Equal(t, token.IsExpired(), restored.IsExpired())
}
