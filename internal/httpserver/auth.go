package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/pkg/authclient"
)

type AuthHTTP struct {
	App *app.App
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var creds authclient.Credentials
	if err := c.Bind(&creds); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sess, err := h.App.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
		}
		l.Warn("login_error", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}

	l.Info("login_success")
	return c.JSON(http.StatusOK, sess)
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var reg authclient.Registration
	if err := c.Bind(&reg); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	sess, err := h.App.Register(ctx, reg)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
		case errors.Is(err, app.ErrRegisteredLoginFailed):
			// The account exists; the user just has to sign in manually.
			l.Warn("register_error", "status", 409, "error", err)
			return echo.NewHTTPError(http.StatusConflict, "registered but could not sign in, please log in manually")
		default:
			l.Warn("register_error", "status", 422, "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "registration failed")
		}
	}

	l.Info("register_success")
	return c.JSON(http.StatusCreated, sess)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if err := h.App.Logout(ctx); err != nil {
		l.Error("logout_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, "logged out")
}

func (h *AuthHTTP) Session(c echo.Context) error {
	st := h.App.Store.Snapshot().Auth
	return c.JSON(http.StatusOK, map[string]any{
		"is_authenticated": st.IsAuthenticated(),
		"status":           st.Status,
		"user":             st.User,
		"error":            st.Error,
	})
}
