package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"
	"profast/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Context keys for data passed from middleware to handlers.
const (
	identityContextKey = "identity"
	roleContextKey     = "role"
)

// RoleProvider resolves a caller's role from the user directory.
// Satisfied by queries.GetUserRoleQueryHandler.
type RoleProvider interface {
	Handle(ctx context.Context, query queries.GetUserRoleQuery) (string, error)
}

// AuthMiddleware authenticates requests and gates routes by role. The token
// only establishes who the caller is; the role is always resolved from the
// user directory, so a stale or tampered role claim can never widen access.
type AuthMiddleware struct {
	verifier ports.TokenVerifier
	roles    RoleProvider
}

// NewAuthMiddleware creates the authentication middleware.
func NewAuthMiddleware(verifier ports.TokenVerifier, roles RoleProvider) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, roles: roles}
}

// Authenticate verifies the bearer token and stores the caller identity in
// the request context. A missing credential is 401; a present but invalid
// one is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing authorization header",
			})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "invalid authorization header",
			})
		}

		identity, err := m.verifier.Verify(c.Request().Context(), parts[1])
		if err != nil {
			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "invalid token",
			})
		}

		c.Set(identityContextKey, identity)
		return next(c)
	}
}

// ResolveRole looks up the caller's directory role and stores it in the
// request context without gating. Callers without a directory record get an
// empty role.
func (m *AuthMiddleware) ResolveRole(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, err := m.lookupRole(c)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: "failed to resolve role",
			})
		}

		c.Set(roleContextKey, role)
		return next(c)
	}
}

// RequireRoles gates the route to callers whose directory role is in the
// allowed set. Callers without a directory record are refused.
func (m *AuthMiddleware) RequireRoles(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := m.lookupRole(c)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, ErrorResponse{
					Code:    http.StatusInternalServerError,
					Message: "failed to resolve role",
				})
			}

			for _, want := range allowed {
				if role == want {
					c.Set(roleContextKey, role)
					return next(c)
				}
			}

			return c.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "insufficient role",
			})
		}
	}
}

func (m *AuthMiddleware) lookupRole(c echo.Context) (string, error) {
	identity := identityFrom(c)

	query, err := queries.NewGetUserRoleQuery(identity.Email)
	if err != nil {
		return "", err
	}

	role, err := m.roles.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", nil
		}
		return "", err
	}

	return role, nil
}

// identityFrom returns the identity stored by Authenticate. Must only be
// called on routes behind the Authenticate middleware.
func identityFrom(c echo.Context) ports.Identity {
	identity, _ := c.Get(identityContextKey).(ports.Identity)
	return identity
}

// roleFrom returns the role stored by ResolveRole or RequireRoles.
func roleFrom(c echo.Context) string {
	role, _ := c.Get(roleContextKey).(string)
	return role
}

// isAdmin reports whether the resolved role is admin.
func isAdmin(c echo.Context) bool {
	return roleFrom(c) == user.RoleAdmin.String()
}
