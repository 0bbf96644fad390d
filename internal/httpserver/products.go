package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
	"github.com/okhotnikov/storefront/internal/logging"
)

type ProductHTTP struct {
	App *app.App
}

// List serves the product slice as-is: data, async status and error, so
// the caller can render loading/error/success without a second request.
func (h *ProductHTTP) List(c echo.Context) error {
	st := h.App.Store.Snapshot().Products
	return c.JSON(http.StatusOK, map[string]any{
		"data":   st.Data,
		"status": st.Status,
		"error":  st.Error,
	})
}

// Refresh triggers the product fetch task; the optional category query
// narrows the catalog call.
func (h *ProductHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.refresh")

	_, err := h.App.FetchProducts(ctx, c.QueryParam("category"))
	if err != nil {
		l.Error("refresh_products_error", "status", 502, "error", err)
		// The slice already holds the failed status and fallback data.
		return echo.NewHTTPError(http.StatusBadGateway, "cannot fetch products")
	}

	st := h.App.Store.Snapshot().Products
	return c.JSON(http.StatusOK, map[string]any{
		"data":   st.Data,
		"status": st.Status,
	})
}

func (h *ProductHTTP) Categories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.categories")

	cats, err := h.App.Categories(ctx)
	if err != nil {
		l.Error("get_categories_error", "status", 502, "error", err)
		return echo.NewHTTPError(http.StatusBadGateway, "cannot fetch categories")
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *ProductHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.get")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not integer")
	}

	p, err := h.App.Product(ctx, id)
	if err != nil {
		l.Warn("get_product_error", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.search")

	hits, err := h.App.SearchProducts(ctx, c.QueryParam("q"))
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "q required")
		}
		l.Error("search_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}
	return c.JSON(http.StatusOK, hits)
}
