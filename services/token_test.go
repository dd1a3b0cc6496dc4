package services

import (
	"testing"
	"time"

	"bookit/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	actor := Actor{ID: 42, Name: "Linh", Role: models.RoleAdmin}

	token, err := GenerateToken(actor, "secret", time.Hour)
	require.NoError(t, err)

	got, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, actor, got)
	assert.True(t, got.IsAdmin())
}

func TestParseToken_Rejects(t *testing.T) {
	token, err := GenerateToken(Actor{ID: 1}, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateToken(Actor{ID: 1}, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)

	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseToken(anonymous, "secret")
	assert.Error(t, err)

	_, err = GenerateToken(Actor{ID: 1}, "", time.Hour)
	assert.Error(t, err)
}

func TestActorIsAdmin(t *testing.T) {
	assert.False(t, Actor{Role: models.RoleUser}.IsAdmin())
	assert.True(t, Actor{Role: models.RoleAdmin}.IsAdmin())
	assert.True(t, Actor{Role: models.RoleSuperAdmin}.IsAdmin())
}
