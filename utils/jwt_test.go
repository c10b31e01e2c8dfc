package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("s3cret", 42, "alice", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestParseTokenRejects(t *testing.T) {
	token, err := GenerateToken("s3cret", 1, "bob", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken("s3cret", 1, "bob", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("other", token)
	assert.Error(t, err)

	_, err = ParseToken("s3cret", expired)
	assert.Error(t, err)

	_, err = ParseToken("s3cret", "not-a-token")
	assert.Error(t, err)
}

func TestTokenRequiresSecret(t *testing.T) {
	_, err := GenerateToken("", 1, "bob", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	_, err = ParseToken("", "x")
	assert.ErrorIs(t, err, ErrNoSecret)
}
