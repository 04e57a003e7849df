package http_test

import (
	"context"
	"errors"
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

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateChargeIntent(ctx context.Context, amount int64, methodID string) (string, error) {
	args := m.Called(ctx, amount, methodID)
	return args.String(0), args.Error(1)
}

func newTestServer(gateway ports.PaymentGateway) *httpadapter.Server {
	return httpadapter.NewServer(
		commands.RegisterUserCommandHandler{},
		commands.CreateParcelCommandHandler{},
		commands.ApplyAsRiderCommandHandler{},
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
		gateway,
	)
}

func postJSON(handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/payment-intents", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = handler(c)
	return rec
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	gateway := &MockPaymentGateway{}
	gateway.On("CreateChargeIntent", mock.Anything, int64(250), "pm_card").
		Return("pi_secret_123", nil).Once()

	server := newTestServer(gateway)
	rec := postJSON(server.CreatePaymentIntent, `{"amount":250,"method":"pm_card"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"clientSecret":"pi_secret_123"}`, rec.Body.String())
	gateway.AssertExpectations(t)
}

func TestCreatePaymentIntent_NonPositiveAmount(t *testing.T) {
	gateway := &MockPaymentGateway{}
	server := newTestServer(gateway)

	rec := postJSON(server.CreatePaymentIntent, `{"amount":0,"method":"pm_card"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	gateway.AssertNotCalled(t, "CreateChargeIntent")
}

func TestCreatePaymentIntent_MissingMethod(t *testing.T) {
	gateway := &MockPaymentGateway{}
	server := newTestServer(gateway)

	rec := postJSON(server.CreatePaymentIntent, `{"amount":250}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	gateway.AssertNotCalled(t, "CreateChargeIntent")
}

func TestCreatePaymentIntent_GatewayFailure(t *testing.T) {
	gateway := &MockPaymentGateway{}
	gateway.On("CreateChargeIntent", mock.Anything, int64(250), "pm_card").
		Return("", errors.New("stripe: 503")).Once()

	server := newTestServer(gateway)
	rec := postJSON(server.CreatePaymentIntent, `{"amount":250,"method":"pm_card"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	gateway.AssertExpectations(t)
}
