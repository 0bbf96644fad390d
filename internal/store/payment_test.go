package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/storefront/internal/models"
)

func draft(items ...models.CartLine) models.OrderDraft {
	return models.OrderDraft{Items: items, UserID: "mor_2314"}
}

func order(id string, items ...models.CartLine) models.Order {
	return models.Order{
		OrderID:       id,
		TransactionID: "TXN-" + id,
		Items:         items,
		Status:        "completed",
		Timestamp:     time.Now(),
	}
}

func TestPayment_StageOrderKeepsDraft(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(StageOrder{Draft: draft(models.CartLine{ProductID: 1, Quantity: 2})})

	st := s.Snapshot().Payment
	require.NotNil(t, st.CurrentOrder)
	assert.Equal(t, "mor_2314", st.CurrentOrder.UserID)
}

func TestPayment_FulfilledFinalizesAndPrepends(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(HistoryRestored{Orders: []models.Order{order("ORD-old")}})
	s.Dispatch(StageOrder{Draft: draft()})
	s.Dispatch(PaymentPending{})
	require.Equal(t, StatusLoading, s.Snapshot().Payment.Status)

	s.Dispatch(PaymentFulfilled{Order: order("ORD-new")})

	st := s.Snapshot().Payment
	assert.Equal(t, StatusSuccess, st.Status)
	assert.Nil(t, st.CurrentOrder, "draft is consumed")
	require.NotNil(t, st.LastOrder)
	assert.Equal(t, "ORD-new", st.LastOrder.OrderID)
	require.Len(t, st.History, 2)
	assert.Equal(t, "ORD-new", st.History[0].OrderID, "most recent first")
	assert.Equal(t, "ORD-old", st.History[1].OrderID)
}

func TestPayment_RejectedLeavesDraftAndHistory(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(HistoryRestored{Orders: []models.Order{order("ORD-old")}})
	s.Dispatch(StageOrder{Draft: draft(models.CartLine{ProductID: 1, Quantity: 1})})
	s.Dispatch(PaymentPending{})
	s.Dispatch(PaymentRejected{Err: "payment failed. Please try again"})

	st := s.Snapshot().Payment
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "payment failed. Please try again", st.Error)
	require.NotNil(t, st.CurrentOrder, "draft survives a decline")
	require.Len(t, st.History, 1)
	assert.Nil(t, st.LastOrder)
}

func TestPayment_ClearLastOrderGuardedByID(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(PaymentFulfilled{Order: order("ORD-1")})
	s.Dispatch(PaymentFulfilled{Order: order("ORD-2")})

	// An expiry for the older order must not clear the newer one.
	s.Dispatch(ClearLastOrder{OrderID: "ORD-1"})
	st := s.Snapshot().Payment
	require.NotNil(t, st.LastOrder)
	assert.Equal(t, "ORD-2", st.LastOrder.OrderID)

	s.Dispatch(ClearLastOrder{OrderID: "ORD-2"})
	st = s.Snapshot().Payment
	assert.Nil(t, st.LastOrder)
	assert.Len(t, st.History, 2, "expiry never touches history")
}

func TestPayment_ClearLastOrderUnconditionalWithEmptyID(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(PaymentFulfilled{Order: order("ORD-1")})
	s.Dispatch(ClearLastOrder{})
	assert.Nil(t, s.Snapshot().Payment.LastOrder)
}

func TestPayment_ClearError(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(PaymentRejected{Err: "declined"})
	s.Dispatch(ClearPaymentError{})
	assert.Empty(t, s.Snapshot().Payment.Error)
}
