package http

import (
	"net/http"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

// Rider is the wire representation of a rider application read model.
type Rider struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	District   string `json:"district"`
	Status     string `json:"status"`
	WorkStatus string `json:"workStatus"`
}

func toRiderListJSON(riders []queries.RiderResponse) []Rider {
	out := make([]Rider, len(riders))
	for i, r := range riders {
		out[i] = Rider{
			ID:         r.ID.String(),
			Name:       r.Name,
			Email:      r.Email,
			District:   r.District,
			Status:     r.Status,
			WorkStatus: r.WorkStatus,
		}
	}
	return out
}

// ApplyAsRider handles POST /riders. The applicant is the caller; an admin
// may instead supply an applicant email to file on someone's behalf.
func (s *Server) ApplyAsRider(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		District string `json:"district"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	identity := identityFrom(c)
	email := identity.Email
	if body.Email != "" && body.Email != identity.Email {
		if !isAdmin(c) {
			return respondForbidden(c, "only admins may apply on behalf of another user")
		}
		email = body.Email
	}

	name := body.Name
	if name == "" && email == identity.Email {
		name = identity.Name
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewApplyAsRiderCommand(riderID, name, email, body.District)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.applyAsRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": riderID.String()})
}

// GetPendingRiders handles GET /riders/pending.
func (s *Server) GetPendingRiders(c echo.Context) error {
	return s.listRidersByStatus(c, rider.StatusPending)
}

// GetActiveRiders handles GET /riders/active.
func (s *Server) GetActiveRiders(c echo.Context) error {
	return s.listRidersByStatus(c, rider.StatusActive)
}

func (s *Server) listRidersByStatus(c echo.Context, status rider.Status) error {
	query, err := queries.NewGetRidersQuery(status)
	if err != nil {
		return respondError(c, err)
	}

	riders, err := s.getRidersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toRiderListJSON(riders))
}

// GetAvailableRiders handles GET /riders/available?district=.
func (s *Server) GetAvailableRiders(c echo.Context) error {
	query, err := queries.NewGetAvailableRidersQuery(c.QueryParam("district"))
	if err != nil {
		return respondError(c, err)
	}

	riders, err := s.getAvailableRidersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toRiderListJSON(riders))
}

// ChangeRiderStatus handles PATCH /riders/:id/status. Approval promotes the
// matching user record to the rider role in the same transaction.
func (s *Server) ChangeRiderStatus(c echo.Context) error {
	riderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	status, err := rider.StatusFromString(body.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewChangeRiderStatusCommand(riderID, status)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.changeRiderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// GetRiderParcels handles GET /riders/parcels: the caller's parcels still
// in progress.
func (s *Server) GetRiderParcels(c echo.Context) error {
	return s.listRiderParcels(c, false)
}

// GetRiderCompletedParcels handles GET /rider/completed-parcels.
func (s *Server) GetRiderCompletedParcels(c echo.Context) error {
	return s.listRiderParcels(c, true)
}

func (s *Server) listRiderParcels(c echo.Context, completed bool) error {
	identity := identityFrom(c)

	query, err := queries.NewGetRiderParcelsQuery(identity.Email, completed)
	if err != nil {
		return respondError(c, err)
	}

	parcels, err := s.getRiderParcelsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelListJSON(parcels))
}
