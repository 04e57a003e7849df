// Package http is the inbound HTTP adapter. It binds Echo routes to the
// application's command and query handlers and translates domain errors
// into HTTP status codes.
package http

import (
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/domain/model/user"
	"profast/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler        commands.RegisterUserCommandHandler
	createParcelHandler        commands.CreateParcelCommandHandler
	applyAsRiderHandler        commands.ApplyAsRiderCommandHandler
	changeRiderStatusHandler   commands.ChangeRiderStatusCommandHandler
	assignRiderHandler         commands.AssignRiderCommandHandler
	advanceParcelStatusHandler commands.AdvanceParcelStatusCommandHandler
	recordPaymentHandler       commands.RecordPaymentCommandHandler
	changeUserRoleHandler      commands.ChangeUserRoleCommandHandler

	// Query handlers
	getParcelsHandler         queries.GetParcelsQueryHandler
	getParcelByIDHandler      queries.GetParcelByIDQueryHandler
	getRidersHandler          queries.GetRidersQueryHandler
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler
	getRiderParcelsHandler    queries.GetRiderParcelsQueryHandler
	searchUsersHandler        queries.SearchUsersQueryHandler
	getUserRoleHandler        queries.GetUserRoleQueryHandler
	getPaymentsHandler        queries.GetPaymentsQueryHandler

	// External collaborators
	paymentGateway ports.PaymentGateway
}

// NewServer creates an HTTP server with the required command and query
// handlers and the charge-intent gateway.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	applyAsRiderHandler commands.ApplyAsRiderCommandHandler,
	changeRiderStatusHandler commands.ChangeRiderStatusCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	advanceParcelStatusHandler commands.AdvanceParcelStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	changeUserRoleHandler commands.ChangeUserRoleCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getParcelByIDHandler queries.GetParcelByIDQueryHandler,
	getRidersHandler queries.GetRidersQueryHandler,
	getAvailableRidersHandler queries.GetAvailableRidersQueryHandler,
	getRiderParcelsHandler queries.GetRiderParcelsQueryHandler,
	searchUsersHandler queries.SearchUsersQueryHandler,
	getUserRoleHandler queries.GetUserRoleQueryHandler,
	getPaymentsHandler queries.GetPaymentsQueryHandler,
	paymentGateway ports.PaymentGateway,
) *Server {
	return &Server{
		registerUserHandler:        registerUserHandler,
		createParcelHandler:        createParcelHandler,
		applyAsRiderHandler:        applyAsRiderHandler,
		changeRiderStatusHandler:   changeRiderStatusHandler,
		assignRiderHandler:         assignRiderHandler,
		advanceParcelStatusHandler: advanceParcelStatusHandler,
		recordPaymentHandler:       recordPaymentHandler,
		changeUserRoleHandler:      changeUserRoleHandler,
		getParcelsHandler:          getParcelsHandler,
		getParcelByIDHandler:       getParcelByIDHandler,
		getRidersHandler:           getRidersHandler,
		getAvailableRidersHandler:  getAvailableRidersHandler,
		getRiderParcelsHandler:     getRiderParcelsHandler,
		searchUsersHandler:         searchUsersHandler,
		getUserRoleHandler:         getUserRoleHandler,
		getPaymentsHandler:         getPaymentsHandler,
		paymentGateway:             paymentGateway,
	}
}

// RegisterRoutes wires the routes onto the Echo instance. statusRoles is the
// set of roles allowed to advance a parcel's delivery status.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware, statusRoles []string) {
	api := e.Group("", auth.Authenticate)

	// Any authenticated caller.
	api.POST("/users", s.RegisterUser)
	api.POST("/parcels", s.CreateParcel)
	api.POST("/payments", s.RecordPayment)
	api.POST("/payment-intents", s.CreatePaymentIntent)
	api.GET("/parcels/:id", s.GetParcelByID)

	// Authenticated self; admins may read any or act on behalf.
	selfScoped := api.Group("", auth.ResolveRole)
	selfScoped.POST("/riders", s.ApplyAsRider)
	selfScoped.GET("/parcels", s.GetParcels)
	selfScoped.GET("/payments", s.GetPayments)
	selfScoped.GET("/users/:email/role", s.GetUserRole)

	admin := api.Group("", auth.RequireRoles(user.RoleAdmin.String()))
	admin.PATCH("/parcels/:id/assign", s.AssignRider)
	admin.GET("/riders/pending", s.GetPendingRiders)
	admin.GET("/riders/active", s.GetActiveRiders)
	admin.GET("/riders/available", s.GetAvailableRiders)
	admin.PATCH("/riders/:id/status", s.ChangeRiderStatus)
	admin.GET("/users/search", s.SearchUsers)
	admin.PATCH("/users/:id/role", s.ChangeUserRole)

	riderOnly := api.Group("", auth.RequireRoles(user.RoleRider.String()))
	riderOnly.GET("/riders/parcels", s.GetRiderParcels)
	riderOnly.GET("/rider/completed-parcels", s.GetRiderCompletedParcels)

	api.PATCH("/parcels/:id/status", s.AdvanceParcelStatus, auth.RequireRoles(statusRoles...))
}
