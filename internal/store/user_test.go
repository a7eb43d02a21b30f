package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	_, _, _, users := newTestStores(t)

	user, err := users.Register("dana@example.com", "hunter22", "Dana")
	require.NoError(t, err)
	assert.Equal(t, "dana@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.Nil(t, user.LastLoginAt)

	logged, err := users.Login("dana@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	require.NotNil(t, logged.LastLoginAt)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	_, _, _, users := newTestStores(t)

	_, err := users.Register("  Dana@Example.COM ", "hunter22", "Dana")
	require.NoError(t, err)

	_, err = users.Login("dana@example.com", "hunter22")
	require.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, _, _, users := newTestStores(t)

	_, err := users.Register("dana@example.com", "hunter22", "Dana")
	require.NoError(t, err)

	_, err = users.Register("dana@example.com", "different", "Other Dana")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	_, _, _, users := newTestStores(t)

	_, err := users.Register("not-an-email", "hunter22", "Dana")
	assert.True(t, IsValidation(err))

	_, err = users.Register("dana@example.com", "short", "Dana")
	assert.True(t, IsValidation(err), "password below 6 chars must be rejected")
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	_, _, _, users := newTestStores(t)

	_, err := users.Register("dana@example.com", "hunter22", "Dana")
	require.NoError(t, err)

	_, wrongPassword := users.Login("dana@example.com", "wrong-password")
	_, unknownEmail := users.Login("nobody@example.com", "hunter22")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail, "both failures must be the same error")
}
