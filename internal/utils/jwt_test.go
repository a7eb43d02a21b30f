package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roypriyanshu02/graphic-walker-app/internal/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "dana@example.com",
		Name:  "Dana",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := testUser()

	token, err := GenerateJWT("secret", time.Hour, user)
	require.NoError(t, err)

	claims, err := ValidateJWT("secret", token)
	require.NoError(t, err)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "Dana", claims.Name)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", time.Hour, testUser())
	require.NoError(t, err)

	_, err = ValidateJWT("other-secret", token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("secret", -time.Minute, testUser())
	require.NoError(t, err)

	_, err = ValidateJWT("secret", token)
	assert.Error(t, err)
}

func TestJWTTampered(t *testing.T) {
	token, err := GenerateJWT("secret", time.Hour, testUser())
	require.NoError(t, err)

	_, err = ValidateJWT("secret", token+"x")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
