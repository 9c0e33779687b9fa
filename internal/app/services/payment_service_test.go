package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmay/coachdesk/internal/pkg/apperrors"
	"github.com/tanmay/coachdesk/internal/pkg/gateway"
)

const testSignatureKey = "gateway-secret"

type fakePaymentStore struct {
	existing    map[string]bool
	existsErr   error
	settleErr   error
	settleCalls int
	settledID   string
	alreadyPaid bool
}

func (f *fakePaymentStore) Exists(_ context.Context, studentID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[studentID], nil
}

func (f *fakePaymentStore) SettleFees(_ context.Context, studentID, _, _ string, _ time.Time) (bool, error) {
	f.settleCalls++
	f.settledID = studentID
	if f.settleErr != nil {
		return false, f.settleErr
	}
	if !f.existing[studentID] {
		return false, apperrors.ErrStudentNotFound
	}
	return !f.alreadyPaid, nil
}

type fakeGateway struct {
	order *gateway.Order
	err   error

	gotAmount  int64
	gotReceipt string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinorUnits int64, receipt string) (*gateway.Order, error) {
	f.gotAmount = amountMinorUnits
	f.gotReceipt = receipt
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("reserves an order for a known student", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		gw := &fakeGateway{order: &gateway.Order{ID: "order_abc", Amount: 50000, Currency: "INR"}}
		svc := NewPaymentService(store, gw, testSignatureKey)

		order, err := svc.CreateOrder(ctx, 50000, "s1")
		require.NoError(t, err)
		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, int64(50000), gw.gotAmount)
		assert.Contains(t, gw.gotReceipt, "s1")
	})

	t.Run("rejects a non-positive amount before touching anything", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		gw := &fakeGateway{}
		svc := NewPaymentService(store, gw, testSignatureKey)

		_, err := svc.CreateOrder(ctx, 0, "s1")
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)

		_, err = svc.CreateOrder(ctx, -100, "s1")
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.Empty(t, gw.gotReceipt)
	})

	t.Run("rejects an unknown student", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{}}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		_, err := svc.CreateOrder(ctx, 50000, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	t.Run("wraps gateway failures", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		gw := &fakeGateway{err: errors.New("gateway: connection refused")}
		svc := NewPaymentService(store, gw, testSignatureKey)

		_, err := svc.CreateOrder(ctx, 50000, "s1")
		assert.ErrorIs(t, err, apperrors.ErrOrderCreateFailed)
	})
}

func TestPaymentService_Settle(t *testing.T) {
	ctx := context.Background()
	validSig := gateway.SignPayment("order_1", "pay_1", testSignatureKey)

	t.Run("valid signature settles the fees", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		require.NoError(t, svc.Settle(ctx, "order_1", "pay_1", validSig, "s1"))
		assert.Equal(t, 1, store.settleCalls)
		assert.Equal(t, "s1", store.settledID)
	})

	t.Run("invalid signature mutates nothing", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		err := svc.Settle(ctx, "order_1", "pay_1", "forged-signature", "s1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
		assert.Zero(t, store.settleCalls)
	})

	t.Run("signature over different identifiers is rejected", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		err := svc.Settle(ctx, "order_2", "pay_1", validSig, "s1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidSignature)
		assert.Zero(t, store.settleCalls)
	})

	t.Run("re-settling an already paid ledger is a no-op success", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{"s1": true}, alreadyPaid: true}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		require.NoError(t, svc.Settle(ctx, "order_1", "pay_1", validSig, "s1"))
		require.NoError(t, svc.Settle(ctx, "order_1", "pay_1", validSig, "s1"))
		assert.Equal(t, 2, store.settleCalls)
	})

	t.Run("unknown student surfaces from the store", func(t *testing.T) {
		store := &fakePaymentStore{existing: map[string]bool{}}
		svc := NewPaymentService(store, &fakeGateway{}, testSignatureKey)

		err := svc.Settle(ctx, "order_1", "pay_1", validSig, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
