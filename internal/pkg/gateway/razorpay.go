package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/tanmay/coachdesk/internal/pkg/logger"
)

// RazorpayGateway creates orders through the Razorpay Orders API.
type RazorpayGateway struct {
	client   *razorpay.Client
	currency string
}

// NewRazorpayGateway creates a gateway from the key pair. The key secret
// doubles as the payment signature key and must never be logged.
func NewRazorpayGateway(keyID, keySecret, currency string) *RazorpayGateway {
	if currency == "" {
		currency = "INR"
	}
	return &RazorpayGateway{
		client:   razorpay.NewClient(keyID, keySecret),
		currency: currency,
	}
}

// CreateOrder mints a gateway order for the given amount. The SDK call
// carries its own transport timeout; ctx cancellation is checked before
// issuing the request.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinorUnits int64, receipt string) (*Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": g.currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	order := &Order{
		Amount:   amountMinorUnits,
		Currency: g.currency,
		Receipt:  receipt,
	}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if order.ID == "" {
		logger.Error().Str("receipt", receipt).Msg("Razorpay response missing order id")
		return nil, fmt.Errorf("razorpay order create: response missing order id")
	}
	if currency, ok := body["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	if amount, ok := body["amount"].(float64); ok {
		order.Amount = int64(amount)
	}

	return order, nil
}
