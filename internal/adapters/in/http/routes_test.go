package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "profast/internal/adapters/in/http"
	"profast/internal/core/application/usecases/commands"
	"profast/internal/core/application/usecases/queries"
	"profast/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newRoutedApp wires the full route table behind mocked authentication so
// handlers run with a caller identity and a resolved role, the way they do
// in production. The caller is always caller@example.com.
func newRoutedApp(applyHandler commands.ApplyAsRiderCommandHandler, role string) *echo.Echo {
	verifier := &MockTokenVerifier{}
	verifier.On("Verify", mock.Anything, "good-token").
		Return(ports.Identity{Email: "caller@example.com", Name: "Caller"}, nil)

	roles := &MockRoleProvider{}
	roles.On("Handle", mock.Anything, mock.Anything).Return(role, nil)

	server := httpadapter.NewServer(
		commands.RegisterUserCommandHandler{},
		commands.CreateParcelCommandHandler{},
		applyHandler,
		commands.ChangeRiderStatusCommandHandler{},
		commands.AssignRiderCommandHandler{},
		commands.AdvanceParcelStatusCommandHandler{},
		commands.RecordPaymentCommandHandler{},
		commands.ChangeUserRoleCommandHandler{},
		queries.GetParcelsQueryHandler{},
		queries.GetParcelByIDQueryHandler{},
		queries.GetRidersQueryHandler{},
		queries.GetAvailableRidersQueryHandler{},
		queries.GetRiderParcelsQueryHandler{},
		queries.SearchUsersQueryHandler{},
		queries.GetUserRoleQueryHandler{},
		queries.GetPaymentsQueryHandler{},
		&MockPaymentGateway{},
	)

	e := echo.New()
	server.RegisterRoutes(e, httpadapter.NewAuthMiddleware(verifier, roles), []string{"admin", "rider"})
	return e
}

func doAuthedRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetParcels_RejectsUnknownDeliveryStatus(t *testing.T) {
	e := newRoutedApp(commands.ApplyAsRiderCommandHandler{}, "user")

	rec := doAuthedRequest(e, http.MethodGet, "/parcels?delivery_status=teleported", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetParcels_RejectsUnknownPaymentStatus(t *testing.T) {
	e := newRoutedApp(commands.ApplyAsRiderCommandHandler{}, "user")

	rec := doAuthedRequest(e, http.MethodGet, "/parcels?payment_status=maybe", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUsers_RequiresEmailTerm(t *testing.T) {
	e := newRoutedApp(commands.ApplyAsRiderCommandHandler{}, "admin")

	rec := doAuthedRequest(e, http.MethodGet, "/users/search", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
