package http

import (
	"net/http"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"
	"profast/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Parcel is the wire representation of a parcel read model.
type Parcel struct {
	ID            string     `json:"id"`
	CreatedBy     string     `json:"createdBy"`
	Title         string     `json:"title,omitempty"`
	PaymentStatus string     `json:"paymentStatus"`
	Status        string     `json:"status"`
	RiderID       *string    `json:"riderId,omitempty"`
	RiderName     string     `json:"riderName,omitempty"`
	RiderEmail    string     `json:"riderEmail,omitempty"`
	PickedAt      *time.Time `json:"pickedAt,omitempty"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func toParcelJSON(p queries.ParcelResponse) Parcel {
	out := Parcel{
		ID:            p.ID.String(),
		CreatedBy:     p.CreatedBy,
		Title:         p.Title,
		PaymentStatus: p.PaymentStatus,
		Status:        p.Status,
		RiderName:     p.RiderName,
		RiderEmail:    p.RiderEmail,
		PickedAt:      p.PickedAt,
		DeliveredAt:   p.DeliveredAt,
		CreatedAt:     p.CreatedAt,
	}
	if p.RiderID != nil {
		riderID := p.RiderID.String()
		out.RiderID = &riderID
	}
	return out
}

func toParcelListJSON(parcels []queries.ParcelResponse) []Parcel {
	out := make([]Parcel, len(parcels))
	for i, p := range parcels {
		out[i] = toParcelJSON(p)
	}
	return out
}

// CreateParcel handles POST /parcels. The sender is the authenticated
// caller; the parcel ID is generated here.
func (s *Server) CreateParcel(c echo.Context) error {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	identity := identityFrom(c)
	parcelID := kernel.NewUUID()

	cmd, err := commands.NewCreateParcelCommand(parcelID, identity.Email, body.Title)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.createParcelHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": parcelID.String()})
}

// GetParcels handles GET /parcels?email&payment_status&delivery_status.
// Non-admin callers only ever see their own parcels; admins see everything
// and may filter by sender email.
func (s *Server) GetParcels(c echo.Context) error {
	createdBy := c.QueryParam("email")
	if !isAdmin(c) {
		createdBy = identityFrom(c).Email
	}

	var status parcel.DeliveryStatus
	if raw := c.QueryParam("delivery_status"); raw != "" {
		parsed, err := parcel.DeliveryStatusFromString(raw)
		if err != nil {
			return respondError(c, err)
		}
		status = parsed
	}

	var paymentStatus parcel.PaymentStatus
	if raw := c.QueryParam("payment_status"); raw != "" {
		parsed, err := parcel.PaymentStatusFromString(raw)
		if err != nil {
			return respondError(c, err)
		}
		paymentStatus = parsed
	}

	query, err := queries.NewGetParcelsQuery(createdBy, status, paymentStatus)
	if err != nil {
		return respondError(c, err)
	}

	parcels, err := s.getParcelsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelListJSON(parcels))
}

// GetParcelByID handles GET /parcels/:id.
func (s *Server) GetParcelByID(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetParcelByIDQuery(parcelID)
	if err != nil {
		return respondError(c, err)
	}

	found, err := s.getParcelByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelJSON(found))
}

// AssignRider handles PATCH /parcels/:id/assign.
func (s *Server) AssignRider(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		RiderID string `json:"riderId"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	riderID, err := kernel.UUIDFromString(body.RiderID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.assignRiderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// AdvanceParcelStatus handles PATCH /parcels/:id/status. The transition
// table is enforced by the aggregate; an illegal jump comes back as 400.
func (s *Server) AdvanceParcelStatus(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	status, err := parcel.DeliveryStatusFromString(body.Status)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceParcelStatusCommand(parcelID, status)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.advanceParcelStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusOK)
}
