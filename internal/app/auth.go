package app

import (
	"context"
	"fmt"

	"github.com/okhotnikov/storefront/internal/events"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/store"
	"github.com/okhotnikov/storefront/pkg/authclient"
)

// Login moves auth through authenticating into authenticated or
// auth-error. On success the session is persisted so a later Bootstrap
// can restore it.
func (a *App) Login(ctx context.Context, creds authclient.Credentials) (*models.Session, error) {
	l := logging.FromContext(ctx).With("svc", "app.login", "username", creds.Username)

	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	a.Store.Dispatch(store.LoginPending{})

	resp, err := a.Auth.Login(ctx, creds)
	if err != nil {
		l.Warn("login_failed", "error", err)
		a.Store.Dispatch(store.LoginRejected{Err: "login failed"})
		return nil, fmt.Errorf("login: %w", err)
	}

	sess := models.Session{
		User:  models.User{Username: creds.Username},
		Token: resp.Token,
	}

	// Persistence is optimistic: a failed write costs the session its
	// durability across restarts, not the login itself.
	if err := a.Sessions.Save(ctx, sess); err != nil {
		l.Error("session persist failed", "error", err)
	}

	a.Store.Dispatch(store.LoginFulfilled{Session: sess})
	a.publish(ctx, events.TopicAuth, creds.Username, map[string]any{
		"type":     "user_logged_in",
		"username": creds.Username,
	})

	l.Info("login_success")
	return &sess, nil
}

// Register creates the account and immediately signs in with the same
// credentials. A failure of that second step is reported as
// ErrRegisteredLoginFailed so the UI can direct the user to log in
// manually instead of re-registering.
func (a *App) Register(ctx context.Context, reg authclient.Registration) (*models.Session, error) {
	l := logging.FromContext(ctx).With("svc", "app.register", "username", reg.Username)

	if reg.Username == "" || reg.Password == "" {
		return nil, fmt.Errorf("%w: username and password required", ErrValidation)
	}

	a.Store.Dispatch(store.LoginPending{})

	if _, err := a.Auth.Register(ctx, reg); err != nil {
		l.Warn("register_failed", "error", err)
		a.Store.Dispatch(store.LoginRejected{Err: "registration failed"})
		return nil, fmt.Errorf("register: %w", err)
	}

	a.publish(ctx, events.TopicAuth, reg.Username, map[string]any{
		"type":     "user_registered",
		"username": reg.Username,
	})

	sess, err := a.Login(ctx, authclient.Credentials{
		Username: reg.Username,
		Password: reg.Password,
	})
	if err != nil {
		l.Warn("post_register_login_failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRegisteredLoginFailed, err)
	}

	l.Info("register_success")
	return sess, nil
}

// Logout clears the persisted session unconditionally and resets the
// auth slice, even mid-authentication.
func (a *App) Logout(ctx context.Context) error {
	l := logging.FromContext(ctx).With("svc", "app.logout")

	username := ""
	if u := a.Store.Snapshot().Auth.User; u != nil {
		username = u.Username
	}

	if err := a.Sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	a.Store.Dispatch(store.LoggedOut{})

	a.publish(ctx, events.TopicAuth, username, map[string]any{
		"type":     "user_logged_out",
		"username": username,
	})

	l.Info("logout_success")
	return nil
}
