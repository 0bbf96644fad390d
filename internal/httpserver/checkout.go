package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/payment"
)

type CheckoutHTTP struct {
	App *app.App
}

func (h *CheckoutHTTP) Stage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.stage")

	var req struct {
		Shipping models.ShippingInfo `json:"shipping_info"`
		Card     models.Card         `json:"payment_info"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("stage_order_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	draft, err := h.App.StageOrder(ctx, req.Shipping, req.Card)
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			l.Warn("stage_order_error", "status", 422, "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		l.Error("stage_order_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, draft)
}

func (h *CheckoutHTTP) Pay(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.pay")

	order, err := h.App.ProcessPayment(ctx)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "no staged order")
		case errors.Is(err, payment.ErrDeclined):
			// Retryable; the cart and draft are untouched.
			l.Warn("payment_declined", "status", 402)
			return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
		default:
			l.Error("pay_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "payment processing failed")
		}
	}

	l.Info("payment_success", "order_id", order.OrderID)
	return c.JSON(http.StatusOK, order)
}

func (h *CheckoutHTTP) History(c echo.Context) error {
	return c.JSON(http.StatusOK, h.App.Store.Snapshot().Payment.History)
}

func (h *CheckoutHTTP) LastOrder(c echo.Context) error {
	last := h.App.Store.Snapshot().Payment.LastOrder
	if last == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no recent order")
	}
	return c.JSON(http.StatusOK, last)
}
