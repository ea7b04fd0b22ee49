package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	token, err := manager.GenerateToken("admin@example.com", 0)
	require.NoError(t, err)

	subject, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", subject)
}

func TestGenerateTokenRejectsEmptySubject(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	_, err := manager.GenerateToken("  ", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenDefaultTTL(t *testing.T) {
	manager := NewTokenManager("secret", 0)
	assert.Equal(t, DefaultTokenTTL, manager.TTL())

	issuedAt := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return issuedAt }

	token, err := manager.GenerateToken("admin@example.com", 0)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = new(jwt.Parser).ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(15*time.Minute).Unix(), claims.ExpiresAt)
}

func TestTokenExpires(t *testing.T) {
	manager := NewTokenManager("secret", time.Minute)

	token, err := manager.GenerateToken("admin@example.com", time.Minute)
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	require.NoError(t, err, "token must verify before expiry")

	manager.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = manager.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIssuedInThePastIsExpired(t *testing.T) {
	manager := NewTokenManager("secret", time.Minute)
	manager.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := manager.GenerateToken("admin@example.com", time.Minute)
	require.NoError(t, err)

	verifier := NewTokenManager("secret", time.Minute)
	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret", time.Hour).GenerateToken("admin@example.com", 0)
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsMalformedInput(t *testing.T) {
	manager := NewTokenManager("secret", time.Hour)

	_, err := manager.ParseToken("")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = manager.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := manager.GenerateToken("admin@example.com", 0)
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = manager.ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{StandardClaims: jwt.StandardClaims{
		Subject:   "admin@example.com",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewTokenManager("secret", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = TokenFromHeader("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := TokenFromHeader(header)
		assert.ErrorIs(t, err, ErrMissingToken, header)
	}
}
