// Package payment simulates the payment processor. Declines are drawn
// from a fixed probability, so a payment can fail with perfectly valid
// input; callers must treat a decline as a first-class outcome.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrDeclined is the retryable probabilistic failure.
var ErrDeclined = errors.New("payment failed. Please try again")

type Receipt struct {
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

type Gateway struct {
	// DeclineRate in [0,1]; 0 always approves, 1 always declines.
	DeclineRate float64
	// Delay simulates processor latency.
	Delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewGateway(declineRate float64, delay time.Duration) *Gateway {
	return &Gateway{
		DeclineRate: declineRate,
		Delay:       delay,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         time.Now,
	}
}

// Charge runs one payment attempt. The context bounds the simulated
// latency; an expired context reaches the caller before any receipt is
// issued.
func (g *Gateway) Charge(ctx context.Context) (*Receipt, error) {
	if g.Delay > 0 {
		t := time.NewTimer(g.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	declined := g.rnd.Float64() < g.DeclineRate
	ts := g.now()
	g.mu.Unlock()

	if declined {
		return nil, ErrDeclined
	}

	return &Receipt{
		OrderID:       newOrderID(ts),
		TransactionID: newTransactionID(),
		Status:        "completed",
		Timestamp:     ts,
	}, nil
}

// newOrderID keeps the ORD-<millis> shape of the order numbers customers
// see, with a uuid fragment so two orders in the same millisecond still
// get distinct ids.
func newOrderID(ts time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD-%d-%s", ts.UnixMilli(), suffix)
}

func newTransactionID() string {
	return "TXN-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
