package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "botanica/pkg/domain-errors"
)

var jwtService = NewJWTService(
	"test-signing-key",
	"botanica-test",
	"botanica-api",
)

func Test_GenerateCuratorToken(t *testing.T) {
	token, err := jwtService.GenerateCuratorToken("herbarium-curator", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "herbarium-curator", claims.Subject)
	assert.Equal(t, ScopeCurate, claims.Scope)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_GenerateCuratorToken_RequiresSubject(t *testing.T) {
	_, err := jwtService.GenerateCuratorToken("", time.Hour)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func Test_ValidateToken_InvalidToken(t *testing.T) {
	_, err := jwtService.ValidateToken("invalid-token-string")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_ExpiredToken(t *testing.T) {
	token, err := jwtService.GenerateCuratorToken("herbarium-curator", -time.Hour)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, "token has expired", err.(*dErrors.Error).Message)
}

func Test_ValidateToken_WrongAudience(t *testing.T) {
	other := NewJWTService("test-signing-key", "botanica-test", "another-api")
	token, err := other.GenerateCuratorToken("herbarium-curator", time.Hour)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func Test_ValidateToken_MissingScope(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "reader",
			Issuer:    "botanica-test",
			Audience:  []string{"botanica-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "curate scope")
}

func Test_ValidateSubject(t *testing.T) {
	token, err := jwtService.GenerateCuratorToken("seed-bank", time.Hour)
	require.NoError(t, err)

	subject, err := jwtService.ValidateSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "seed-bank", subject)
}
