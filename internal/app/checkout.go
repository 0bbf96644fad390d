package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okhotnikov/storefront/internal/events"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/payment"
	"github.com/okhotnikov/storefront/internal/store"
)

// StageOrder snapshots the current cart with shipping and masked payment
// details into a draft awaiting payment. Nothing is submitted yet.
func (a *App) StageOrder(ctx context.Context, shipping models.ShippingInfo, card models.Card) (*models.OrderDraft, error) {
	snap := a.Store.Snapshot()

	if !snap.Auth.IsAuthenticated() {
		return nil, fmt.Errorf("%w: sign in before checkout", ErrValidation)
	}
	if len(snap.Cart.Lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	items := make([]models.CartLine, len(snap.Cart.Lines))
	copy(items, snap.Cart.Lines)

	draft := models.OrderDraft{
		Items:    items,
		Shipping: shipping,
		Payment:  card.Masked(),
		Totals:   models.ComputeTotals(items, a.Pricing),
		UserID:   snap.Auth.User.Username,
	}

	a.Store.Dispatch(store.StageOrder{Draft: draft})
	return &draft, nil
}

// ProcessPayment runs the staged draft through the gateway. A decline is
// an ordinary outcome: the cart, the draft and the history stay exactly
// as they were so the attempt can be retried. Only a successful charge
// finalizes the order, persists it and removes the charged lines from
// the cart.
func (a *App) ProcessPayment(ctx context.Context) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "app.process_payment")

	draft := a.Store.Snapshot().Payment.CurrentOrder
	if draft == nil {
		return nil, fmt.Errorf("%w: no staged order", ErrValidation)
	}

	a.Store.Dispatch(store.PaymentPending{})

	receipt, err := a.Gateway.Charge(ctx)
	if err != nil {
		a.Store.Dispatch(store.PaymentRejected{Err: err.Error()})
		if errors.Is(err, payment.ErrDeclined) {
			l.Warn("payment_declined")
			return nil, err
		}
		l.Error("payment_failed", "error", err)
		return nil, fmt.Errorf("process payment: %w", err)
	}

	order := finalizeOrder(*draft, *receipt)
	snap := a.Store.Dispatch(store.PaymentFulfilled{Order: order})

	if err := a.History.Save(ctx, snap.Payment.History); err != nil {
		l.Error("history persist failed", "order_id", order.OrderID, "error", err)
	}

	// Charged items leave the cart only now, after the charge stuck.
	for _, item := range order.Items {
		a.Store.Dispatch(store.RemoveFromCart{ProductID: item.ProductID})
	}

	a.publish(ctx, events.TopicOrder, order.OrderID, map[string]any{
		"type":     "order_completed",
		"order_id": order.OrderID,
		"total":    order.Totals.Total,
		"user_id":  order.UserID,
	})

	a.scheduleLastOrderExpiry(order.OrderID)

	l.Info("payment_success", "order_id", order.OrderID)
	return &order, nil
}

func finalizeOrder(draft models.OrderDraft, receipt payment.Receipt) models.Order {
	return models.Order{
		OrderID:       receipt.OrderID,
		TransactionID: receipt.TransactionID,
		Items:         draft.Items,
		Shipping:      draft.Shipping,
		Payment:       draft.Payment,
		Totals:        draft.Totals,
		UserID:        draft.UserID,
		Status:        receipt.Status,
		Timestamp:     receipt.Timestamp,
	}
}

// scheduleLastOrderExpiry clears the confirmation-view order after the
// configured delay. The order id guard means a newer order's timer is
// the only one that can clear it; history is never touched.
func (a *App) scheduleLastOrderExpiry(orderID string) {
	if a.LastOrderTTL <= 0 {
		return
	}
	t := time.AfterFunc(a.LastOrderTTL, func() {
		a.Store.Dispatch(store.ClearLastOrder{OrderID: orderID})
	})
	a.mu.Lock()
	a.timers = append(a.timers, t)
	a.mu.Unlock()
}
