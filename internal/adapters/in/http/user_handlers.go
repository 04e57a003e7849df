package http

import (
	"net/http"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// User is the wire representation of a user directory record.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterUser handles POST /users: first-sign-in registration. Identity
// comes from the verified token; a repeated call for the same email is a
// conflict and leaves the original record untouched.
func (s *Server) RegisterUser(c echo.Context) error {
	identity := identityFrom(c)

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(userID, identity.Email, identity.Name)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": userID.String()})
}

// SearchUsers handles GET /users/search?email=. The term matches email or
// name substrings.
func (s *Server) SearchUsers(c echo.Context) error {
	query, err := queries.NewSearchUsersQuery(c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}

	users, err := s.searchUsersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]User, len(users))
	for i, u := range users {
		out[i] = User{
			ID:        u.ID.String(),
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, out)
}

// GetUserRole handles GET /users/:email/role. Callers may only ask about
// themselves unless they are admin.
func (s *Server) GetUserRole(c echo.Context) error {
	email := c.Param("email")
	if !isAdmin(c) && email != identityFrom(c).Email {
		return respondForbidden(c, "may only read own role")
	}

	query, err := queries.NewGetUserRoleQuery(email)
	if err != nil {
		return respondError(c, err)
	}

	role, err := s.getUserRoleHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"role": role})
}

// ChangeUserRole handles PATCH /users/:id/role. Only user and admin are
// assignable; the rider role is reached through approval alone.
func (s *Server) ChangeUserRole(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	role, err := user.RoleFromString(body.Role)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeUserRoleCommand(userID, role)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.changeUserRoleHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
