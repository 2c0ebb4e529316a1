package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghuram-007/SmartTac-AI-Multiplayer-Tic-Tac-Toe/internal/apperror"
)

func TestAuthService_Tokens(t *testing.T) {
	t.Run("A generated token parses back to the same username", func(t *testing.T) {
		// Given: an auth service with a secret
		auth := NewAuthService("test-secret")

		// When: a token is issued and parsed
		token, err := auth.GenerateToken("alice")
		require.NoError(t, err)

		username, err := auth.ParseToken(token)

		// Then: the identity round-trips
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("A token signed with a different secret is rejected", func(t *testing.T) {
		// Given: a token issued under another secret
		other := NewAuthService("other-secret")
		token, err := other.GenerateToken("alice")
		require.NoError(t, err)

		// When: our service parses it
		auth := NewAuthService("test-secret")
		_, err = auth.ParseToken(token)

		// Then: it is unauthorized
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		auth := NewAuthService("test-secret")

		_, err := auth.ParseToken("not.a.token")

		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}
