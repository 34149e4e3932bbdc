// Package payment wraps the external payment gateway behind a small
// interface so the rest of the application never touches gateway SDK
// types directly.
package payment

import "context"

// Intent is a gateway-side charge attempt. The client completes the
// actual charge using ClientSecret; the server never sees card data.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with an external payment provider.
type Gateway interface {
	// CreateIntent requests a new payment intent for the given amount in
	// minor units (cents). No retry is attempted on failure.
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}
