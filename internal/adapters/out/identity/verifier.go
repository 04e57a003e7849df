// Package identity verifies caller identity tokens. Tokens are issued by an
// external identity provider and carry only who the caller is; roles are
// never read from them.
package identity

import (
	"context"
	"fmt"

	"profast/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// identityClaims is the claim set the provider puts into its tokens.
type identityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256-signed identity tokens against a shared secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for the given shared secret.
func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("identity: secret is required")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the token. Any failure, including a wrong
// signing method, an expired token, or a token without an email claim, is
// reported as ports.ErrTokenIsInvalid so callers need not distinguish.
func (v *JWTVerifier) Verify(_ context.Context, token string) (ports.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &identityClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return ports.Identity{}, ports.ErrTokenIsInvalid
	}

	claims, ok := parsed.Claims.(*identityClaims)
	if !ok || !parsed.Valid || claims.Email == "" {
		return ports.Identity{}, ports.ErrTokenIsInvalid
	}

	return ports.Identity{
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
