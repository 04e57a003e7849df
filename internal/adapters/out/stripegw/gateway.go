// Package stripegw integrates with Stripe for charge intents. The gateway is
// stateless: it registers the intent and hands the client secret back so the
// caller's client can confirm the charge.
package stripegw

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway implements the payment gateway port on top of the Stripe API.
// It holds its own API client rather than the package-level stripe key,
// so multiple gateways with different credentials can coexist.
type Gateway struct {
	api      *client.API
	currency stripe.Currency
}

// NewGateway creates a Stripe gateway with the given secret API key.
func NewGateway(apiKey string) (*Gateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripegw: api key is required")
	}

	api := &client.API{}
	api.Init(apiKey, nil)

	return &Gateway{
		api:      api,
		currency: stripe.CurrencyBDT,
	}, nil
}

// CreateChargeIntent registers a payment intent for the amount in the
// smallest currency unit and returns its client secret.
func (g *Gateway) CreateChargeIntent(ctx context.Context, amount int64, methodID string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("stripegw: amount must be positive, got %d", amount)
	}
	if methodID == "" {
		return "", fmt.Errorf("stripegw: payment method is required")
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(string(g.currency)),
		PaymentMethod: stripe.String(methodID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripegw: create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
