// Package app sequences the asynchronous storefront flows: every remote
// call is wrapped as a task that dispatches pending, then fulfilled or
// rejected, into the store. Cross-slice effects (clearing the cart after
// payment, persisting the session and history) are ordered here by
// explicit dispatch sequencing; the slices themselves never reach into
// each other.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okhotnikov/storefront/internal/events"
	"github.com/okhotnikov/storefront/internal/history"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/payment"
	"github.com/okhotnikov/storefront/internal/search"
	"github.com/okhotnikov/storefront/internal/session"
	"github.com/okhotnikov/storefront/internal/store"
	"github.com/okhotnikov/storefront/pkg/authclient"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	// ErrRegisteredLoginFailed means the account was created but the
	// follow-up sign-in failed; the user should log in manually. It is
	// deliberately distinct from a registration failure.
	ErrRegisteredLoginFailed = errors.New("registered but could not sign in")
)

// CatalogAPI is the slice of the catalog client the flows need.
type CatalogAPI interface {
	Products(ctx context.Context, category string) ([]models.Product, error)
	Product(ctx context.Context, id int) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type AuthAPI interface {
	Login(ctx context.Context, creds authclient.Credentials) (*authclient.LoginResponse, error)
	Register(ctx context.Context, reg authclient.Registration) (*authclient.RegisterResponse, error)
}

type Charger interface {
	Charge(ctx context.Context) (*payment.Receipt, error)
}

type App struct {
	Store    *store.Store
	Catalog  CatalogAPI
	Auth     AuthAPI
	Gateway  Charger
	Sessions *session.Store
	History  *history.Store
	Search   search.Index
	Events   events.Publisher

	Pricing      models.PricingPolicy
	LastOrderTTL time.Duration

	mu     sync.Mutex
	timers []*time.Timer
}

// BootstrapResult is the typed outcome of the startup initialization.
type BootstrapResult struct {
	Session        *models.Session
	RestoredOrders int
}

// Bootstrap reconstructs state from durable storage. It runs exactly
// once at startup; a malformed persisted session is discarded and the
// corrupted entries cleared, never surfaced as a user-visible error.
func (a *App) Bootstrap(ctx context.Context) (BootstrapResult, error) {
	l := logging.FromContext(ctx).With("svc", "app.bootstrap")
	var res BootstrapResult

	sess, ok, err := a.Sessions.Load(ctx)
	switch {
	case errors.Is(err, session.ErrMalformed):
		l.Warn("discarding malformed stored session")
		if cerr := a.Sessions.Clear(ctx); cerr != nil {
			return res, fmt.Errorf("clear malformed session: %w", cerr)
		}
	case err != nil:
		return res, fmt.Errorf("load session: %w", err)
	case ok:
		a.Store.Dispatch(store.SessionRestored{Session: sess})
		res.Session = &sess
		l.Info("session restored", "username", sess.User.Username)
	}

	orders, err := a.History.Load(ctx)
	if err != nil {
		return res, fmt.Errorf("load order history: %w", err)
	}
	if len(orders) > 0 {
		a.Store.Dispatch(store.HistoryRestored{Orders: orders})
		res.RestoredOrders = len(orders)
	}

	return res, nil
}

// Close stops pending last-order expiry timers.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}

// publish sends a domain event best-effort; failures are logged, never
// propagated into the flow that produced them.
func (a *App) publish(ctx context.Context, topic, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := a.Events.Publish(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Warn("event publish failed", "topic", topic, "error", err)
	}
}
