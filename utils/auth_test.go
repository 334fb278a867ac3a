package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenString, err := GenerateToken("64f0c8aa1234567890abcdef", "admin")
	require.NoError(t, err)

	claims, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "64f0c8aa1234567890abcdef", claims.ID)
	assert.Equal(t, "admin", claims.Role)

	// Expiry sits one hour out.
	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	assert.InDelta(t, TokenTTL.Seconds(), remaining.Seconds(), 5)
}

func TestParseTokenTampered(t *testing.T) {
	JwtKey = []byte("test-secret")

	tokenString, err := GenerateToken("64f0c8aa1234567890abcdef", "admin")
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenWrongKey(t *testing.T) {
	JwtKey = []byte("test-secret")
	tokenString, err := GenerateToken("64f0c8aa1234567890abcdef", "admin")
	require.NoError(t, err)

	JwtKey = []byte("a-different-secret")
	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	JwtKey = []byte("test-secret")

	claims := &Claims{
		ID:   "64f0c8aa1234567890abcdef",
		Role: "customer",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}
