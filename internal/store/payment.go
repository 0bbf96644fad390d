package store

import "github.com/okhotnikov/storefront/internal/models"

type PaymentState struct {
	// CurrentOrder is the staged draft awaiting payment, nil outside of
	// an active checkout.
	CurrentOrder *models.OrderDraft
	// History is append-only and most-recent-first. Finalized orders are
	// never mutated.
	History []models.Order
	// LastOrder feeds the confirmation view and is cleared on a timer so
	// a stale confirmation cannot reappear. Clearing it does not touch
	// History.
	LastOrder *models.Order
	Status    AsyncStatus
	Error     string
}

type PaymentIntent interface {
	Intent
	paymentIntent()
}

type StageOrder struct {
	Draft models.OrderDraft
}

type PaymentPending struct{}

// PaymentFulfilled carries the finalized order: the staged draft merged
// with the gateway receipt.
type PaymentFulfilled struct {
	Order models.Order
}

type PaymentRejected struct {
	Err string
}

// HistoryRestored replays the order history read from durable storage at
// startup.
type HistoryRestored struct {
	Orders []models.Order
}

// ClearLastOrder drops the confirmation-view order. OrderID guards
// against an expiry timer from a previous order clearing a newer one;
// empty OrderID clears unconditionally.
type ClearLastOrder struct {
	OrderID string
}

type ClearPaymentError struct{}

func (StageOrder) intent()              {}
func (StageOrder) paymentIntent()       {}
func (PaymentPending) intent()          {}
func (PaymentPending) paymentIntent()   {}
func (PaymentFulfilled) intent()        {}
func (PaymentFulfilled) paymentIntent() {}
func (PaymentRejected) intent()         {}
func (PaymentRejected) paymentIntent()  {}
func (HistoryRestored) intent()         {}
func (HistoryRestored) paymentIntent()  {}
func (ClearLastOrder) intent()          {}
func (ClearLastOrder) paymentIntent()   {}
func (ClearPaymentError) intent()       {}
func (ClearPaymentError) paymentIntent() {}

func reducePayment(st PaymentState, in PaymentIntent) PaymentState {
	switch in := in.(type) {
	case StageOrder:
		d := in.Draft
		st.CurrentOrder = &d

	case PaymentPending:
		st.Status = StatusLoading
		st.Error = ""

	case PaymentFulfilled:
		o := in.Order
		st.Status = StatusSuccess
		st.LastOrder = &o
		next := make([]models.Order, 0, len(st.History)+1)
		next = append(next, o)
		next = append(next, st.History...)
		st.History = next
		st.CurrentOrder = nil
		st.Error = ""

	case PaymentRejected:
		// A declined payment leaves the staged draft and the history
		// untouched so the checkout can be retried.
		st.Status = StatusFailed
		st.Error = in.Err

	case HistoryRestored:
		st.History = in.Orders

	case ClearLastOrder:
		if st.LastOrder == nil {
			return st
		}
		if in.OrderID != "" && st.LastOrder.OrderID != in.OrderID {
			return st
		}
		st.LastOrder = nil

	case ClearPaymentError:
		st.Error = ""
	}
	return st
}
