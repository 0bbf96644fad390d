package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/logging"
)

type WishlistHTTP struct {
	App *app.App
}

func (h *WishlistHTTP) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.App.Store.Snapshot().Wishlist.Items)
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_wishlist_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.ProductID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	wl, err := h.App.AddToWishlist(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("add_to_wishlist_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusCreated, wl.Items)
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	wl := h.App.RemoveFromWishlist(c.Request().Context(), id)
	return c.JSON(http.StatusOK, wl.Items)
}

func (h *WishlistHTTP) MoveToCart(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cart, err := h.App.MoveWishlistToCart(ctx, id)
	if err != nil {
		if errors.Is(err, app.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "item not wishlisted")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, cart.Lines)
}
