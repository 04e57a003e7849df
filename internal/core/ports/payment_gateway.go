package ports

import (
	"context"
)

// PaymentGateway creates charge intents with the external payment provider.
// The returned client secret authorizes client-side confirmation of the
// charge; no local state is kept.
type PaymentGateway interface {
	// CreateChargeIntent registers a charge of the given amount (smallest
	// currency unit) against a payment method and returns the provider's
	// client secret. Provider failures surface as-is; nothing is retried.
	CreateChargeIntent(ctx context.Context, amount int64, methodID string) (string, error)
}
