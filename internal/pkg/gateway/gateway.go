package gateway

import (
	"context"
)

// Order is the gateway-side payment reservation created in phase A of
// the settlement protocol. It is never persisted by this service.
type Order struct {
	ID       string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Gateway mints payment orders with the external payment provider.
// Amounts are in minor currency units (paise).
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinorUnits int64, receipt string) (*Order, error)
}
