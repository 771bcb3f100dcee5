package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	m := NewManager("secret", "venue-cms")
	token, err := m.GenerateAccessToken("u1", "ed@robroy.ca", RoleAdmin)
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.True(t, claims.IsAdmin())
}

func TestRejectsWrongSecretAndIssuer(t *testing.T) {
	token, err := NewManager("secret", "venue-cms").GenerateAccessToken("u1", "", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("other", "venue-cms").ValidateAccessToken(token)
	assert.Error(t, err)

	_, err = NewManager("secret", "someone-else").ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRejectsExpiredAndRefreshTokens(t *testing.T) {
	m := NewManager("secret", "")
	m.ttl = -time.Minute
	expired, err := m.GenerateAccessToken("u1", "", RoleAdmin)
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(expired)
	assert.Error(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           "u1",
		Type:             "refresh",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	signed, err := refresh.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(signed)
	assert.ErrorContains(t, err, "invalid token type")
}
