package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrack/internal/models"
)

func TestSignVerifyRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	u := &models.User{
		ID:       "8b6f9c1e-1111-2222-3333-444455556666",
		Username: "alice",
		FullName: "Alice Smith",
		Role:     models.RoleOwner,
	}
	token, err := Sign(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice Smith", claims.FullName)
	assert.Equal(t, models.RoleOwner, claims.Role)
	assert.True(t, claims.IsOwner())
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Verify("not-a-token")
	assert.Error(t, err)

	token, err := Sign(&models.User{ID: "x", Username: "bob", Role: models.RoleEmployee})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = Verify(token)
	assert.Error(t, err)
}

func TestEmployeeIsNotOwner(t *testing.T) {
	c := Claims{Role: models.RoleEmployee}
	assert.False(t, c.IsOwner())
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pw", hash)

	assert.NoError(t, CheckPassword(hash, "s3cret-pw"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}

func TestGeneratePassword(t *testing.T) {
	pw := GeneratePassword(10)
	assert.Len(t, pw, 10)

	// Non-positive lengths fall back to the default.
	assert.Len(t, GeneratePassword(0), 10)

	// Two draws colliding would be astronomically unlikely.
	assert.NotEqual(t, pw, GeneratePassword(10))
}
