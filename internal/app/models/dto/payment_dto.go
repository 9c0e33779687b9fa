package dto

// CreateOrderRequest asks the gateway to reserve a payment order.
// Amount is in minor currency units (paise).
type CreateOrderRequest struct {
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	StudentID string `json:"studentId" binding:"required"`
}

// CreateOrderResponse echoes the gateway-side reservation back to the
// caller so the client-side checkout can reference it.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId" example:"order_MkWq3GC8hZz2Pa"`
	Amount   int64  `json:"amount" example:"50000"`
	Currency string `json:"currency" example:"INR"`
}

// VerifyPaymentRequest carries the gateway callback parameters the
// client relays after checkout completes.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
}
