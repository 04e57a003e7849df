package http

import (
	"net/http"
	"time"

	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Payment is the wire representation of a ledger entry.
type Payment struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

// RecordPayment handles POST /payments: settles a parcel and appends the
// ledger entry. A parcel that is already paid, or missing, is a conflict.
func (s *Server) RecordPayment(c echo.Context) error {
	var body struct {
		ParcelID      string `json:"parcelId"`
		Amount        int64  `json:"amount"`
		Method        string `json:"method"`
		TransactionID string `json:"transactionId"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(body.ParcelID)
	if err != nil {
		return respondError(c, err)
	}

	identity := identityFrom(c)
	paymentID := kernel.NewUUID()

	cmd, err := commands.NewRecordPaymentCommand(
		paymentID,
		parcelID,
		identity.Email,
		body.Amount,
		body.Method,
		body.TransactionID,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.recordPaymentHandler.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": paymentID.String()})
}

// GetPayments handles GET /payments. Non-admin callers see only their own
// history; admins see the full ledger and may filter by payer.
func (s *Server) GetPayments(c echo.Context) error {
	email := c.QueryParam("email")
	if !isAdmin(c) {
		email = identityFrom(c).Email
	}

	query, err := queries.NewGetPaymentsQuery(email)
	if err != nil {
		return respondError(c, err)
	}

	payments, err := s.getPaymentsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]Payment, len(payments))
	for i, p := range payments {
		out[i] = Payment{
			ID:            p.ID.String(),
			ParcelID:      p.ParcelID.String(),
			Email:         p.Email,
			Amount:        p.Amount,
			Method:        p.Method,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt,
		}
	}

	return c.JSON(http.StatusOK, out)
}

// CreatePaymentIntent handles POST /payment-intents: registers a charge
// with the payment provider and returns the client secret for client-side
// confirmation. Provider failures map to 502.
func (s *Server) CreatePaymentIntent(c echo.Context) error {
	var body struct {
		Amount int64  `json:"amount"`
		Method string `json:"method"`
	}
	if err := c.Bind(&body); err != nil {
		return respondBadRequest(c, "invalid request body")
	}

	if body.Amount <= 0 {
		return respondBadRequest(c, "amount must be positive")
	}
	if body.Method == "" {
		return respondBadRequest(c, "method is required")
	}

	clientSecret, err := s.paymentGateway.CreateChargeIntent(c.Request().Context(), body.Amount, body.Method)
	if err != nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "payment provider unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
