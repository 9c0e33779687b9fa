package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/gateway"
	"github.com/tanmay/coachdesk/internal/pkg/logger"
	"github.com/tanmay/coachdesk/internal/pkg/metrics"
)

// PaymentStore is the slice of the record store the settlement engine
// mutates. SettleFees must be a conditional write: it transitions the
// ledger only from the unpaid state and reports whether it did.
type PaymentStore interface {
	Exists(ctx context.Context, studentID string) (bool, error)
	SettleFees(ctx context.Context, studentID, paymentID, orderID string, at time.Time) (bool, error)
}

// PaymentService implements the two-phase create-then-confirm settlement
// protocol. Phase A reserves an order with the gateway; phase B verifies
// the callback signature before committing the fee-paid transition.
type PaymentService struct {
	store        PaymentStore
	gw           gateway.Gateway
	signatureKey string
	now          func() time.Time
}

// NewPaymentService creates a new payment service instance. signatureKey
// is the server-held gateway secret; it is never exposed to clients.
func NewPaymentService(store PaymentStore, gw gateway.Gateway, signatureKey string) *PaymentService {
	return &PaymentService{
		store:        store,
		gw:           gw,
		signatureKey: signatureKey,
		now:          time.Now,
	}
}

// CreateOrder reserves a payment order with the gateway for the given
// student. No record store mutation happens in this phase.
func (s *PaymentService) CreateOrder(ctx context.Context, amountMinorUnits int64, studentID string) (*gateway.Order, error) {
	if amountMinorUnits <= 0 {
		return nil, apperrors.NewBadRequestError("amount must be positive")
	}

	exists, err := s.store.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	// Receipt derivation is for collision avoidance, not a security
	// property.
	receipt := fmt.Sprintf("receipt_student_%s_%s", studentID, uuid.NewString())

	order, err := s.gw.CreateOrder(ctx, amountMinorUnits, receipt)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Gateway order creation failed")
		return nil, apperrors.NewCustomError(apperrors.ErrOrderCreateFailed, "gateway order creation failed")
	}

	metrics.PaymentOrdersCreated.Inc()
	return order, nil
}

// Settle verifies the callback signature and, only on a match, commits
// the fee-paid transition. A mismatch mutates nothing. Re-settling an
// already paid ledger with a valid signature is a no-op success.
func (s *PaymentService) Settle(ctx context.Context, orderID, paymentID, signature, studentID string) error {
	if !gateway.VerifyPaymentSignature(orderID, paymentID, signature, s.signatureKey) {
		metrics.SignaturesRejected.Inc()
		logger.Warn().Str("orderID", orderID).Str("studentID", studentID).Msg("Payment signature verification failed")
		return apperrors.ErrInvalidSignature
	}

	settled, err := s.store.SettleFees(ctx, studentID, paymentID, orderID, s.now().UTC())
	if err != nil {
		return err
	}

	if settled {
		metrics.PaymentsSettled.Inc()
		logger.Info().Str("orderID", orderID).Str("studentID", studentID).Msg("Fees settled")
	}

	return nil
}
