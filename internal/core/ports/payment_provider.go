package ports

import "context"

// PaymentIntent is the provider's handle for a pending payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// PaymentProvider is the narrow interface to the external payment service.
// Confirmation arrives out of band; this core only creates intents.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*PaymentIntent, error)
}
