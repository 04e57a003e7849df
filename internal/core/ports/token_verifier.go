package ports

import (
	"context"
	"errors"
)

// ErrTokenIsInvalid is returned by TokenVerifier implementations when a
// credential is present but malformed, expired, or fails signature checks.
var ErrTokenIsInvalid = errors.New("identity token is invalid")

// Identity is the verified caller identity extracted from a token. The role
// is deliberately absent: authorization always resolves the role from the
// user directory, never from token claims.
type Identity struct {
	Email string
	Name  string
}

// TokenVerifier validates an identity token presented by a caller.
// Implementations wrap an external verifier and are treated as reliable
// collaborators: a verification failure is terminal for the request.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}
