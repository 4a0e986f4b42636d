package utils

import (
	"testing"
	"time"

	"Backend-TripleA/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testUser() *models.User {
	return &models.User{
		ID:    primitive.NewObjectID(),
		Email: "member@example.com",
		Role:  "member",
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := testUser()

	token, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
}

func TestAccessTokenTTLConfigurable(t *testing.T) {
	t.Setenv("JWT_TTL", "45m")
	assert.Equal(t, 45*time.Minute, accessTokenTTL())

	t.Setenv("JWT_TTL", "bogus")
	assert.Equal(t, defaultAccessTokenTTL, accessTokenTTL())
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_TTL", "1ns")

	token, err := GenerateJWT(testUser())
	require.NoError(t, err)

	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	_, err := ParseJWT("not.a.token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}
