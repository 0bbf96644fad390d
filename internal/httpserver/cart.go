package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/logging"
)

type CartHTTP struct {
	App *app.App
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}
	return id, nil
}

func (h *CartHTTP) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.App.Store.Snapshot().Cart.Lines)
}

func (h *CartHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	cart, err := h.App.AddToCart(ctx, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	l.Info("item added successfully to cart")
	return c.JSON(http.StatusCreated, cart.Lines)
}

func (h *CartHTTP) Increment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cart := h.App.IncrementCartItem(c.Request().Context(), id)
	return c.JSON(http.StatusOK, cart.Lines)
}

func (h *CartHTTP) Decrement(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cart := h.App.DecrementCartItem(c.Request().Context(), id)
	return c.JSON(http.StatusOK, cart.Lines)
}

func (h *CartHTTP) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cart := h.App.RemoveCartItem(c.Request().Context(), id)
	return c.JSON(http.StatusOK, cart.Lines)
}

func (h *CartHTTP) Totals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.App.CartTotals())
}
