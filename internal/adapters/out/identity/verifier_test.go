package identity_test

import (
	"testing"
	"time"

	"profast/internal/adapters/out/identity"
	"profast/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify_Success(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
		"name":  "Alice Rahman",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	got, err := verifier.Verify(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, ports.Identity{Email: "alice@example.com", Name: "Alice Rahman"}, got)
}

func TestJWTVerifier_Verify_WrongSecret(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
	})

	_, err = verifier.Verify(t.Context(), token)
	assert.ErrorIs(t, err, ports.ErrTokenIsInvalid)
}

func TestJWTVerifier_Verify_Expired(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifier.Verify(t.Context(), token)
	assert.ErrorIs(t, err, ports.ErrTokenIsInvalid)
}

func TestJWTVerifier_Verify_MissingEmail(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "No Email",
	})

	_, err = verifier.Verify(t.Context(), token)
	assert.ErrorIs(t, err, ports.ErrTokenIsInvalid)
}

func TestJWTVerifier_Verify_Garbage(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	_, err = verifier.Verify(t.Context(), "not-a-token")
	assert.ErrorIs(t, err, ports.ErrTokenIsInvalid)
}

func TestNewJWTVerifier_EmptySecret(t *testing.T) {
	_, err := identity.NewJWTVerifier("")
	assert.Error(t, err)
}
