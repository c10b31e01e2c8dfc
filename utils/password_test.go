package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	PasswordCost = bcrypt.MinCost
	m.Run()
}

func TestHashPasswordRoundTrip(t *testing.T) {
	for _, pw := range []string{"cat", "correct horse battery staple", "pässwörd", " "} {
		hash, err := HashPassword(pw)
		require.NoError(t, err)
		assert.NotEqual(t, pw, hash)
		assert.True(t, CheckPassword(hash, pw), pw)
		assert.False(t, CheckPassword(hash, pw+"x"), pw)
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("dog")
	require.NoError(t, err)
	b, err := HashPassword("dog")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestHashPasswordLength(t *testing.T) {
	hash, err := HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, strings.Repeat("a", MaxPasswordBytes)))

	_, err = HashPassword(strings.Repeat("a", 80))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)

	// 24 three-byte runes fit, 25 do not
	_, err = HashPassword(strings.Repeat("€", 24))
	require.NoError(t, err)
	_, err = HashPassword(strings.Repeat("€", 25))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestCheckPasswordEmptyHash(t *testing.T) {
	assert.False(t, CheckPassword("", ""))
	assert.False(t, CheckPassword("", "dog"))
}
