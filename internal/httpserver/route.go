package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okhotnikov/storefront/internal/app"
)

type Deps struct {
	App *app.App
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	p := &ProductHTTP{App: d.App}
	e.GET("/products", p.List)
	e.GET("/products/search", p.Search)
	e.GET("/products/categories", p.Categories)
	e.GET("/products/:id", p.Get)
	e.POST("/products/refresh", p.Refresh)

	cart := &CartHTTP{App: d.App}
	e.GET("/cart", cart.Get)
	e.POST("/cart", cart.Add)
	e.GET("/cart/totals", cart.Totals)
	e.POST("/cart/:id/increment", cart.Increment)
	e.POST("/cart/:id/decrement", cart.Decrement)
	e.DELETE("/cart/:id", cart.Remove)

	w := &WishlistHTTP{App: d.App}
	e.GET("/wishlist", w.Get)
	e.POST("/wishlist", w.Add)
	e.DELETE("/wishlist/:id", w.Remove)
	e.POST("/wishlist/:id/cart", w.MoveToCart)

	a := &AuthHTTP{App: d.App}
	e.POST("/auth/login", a.Login)
	e.POST("/auth/register", a.Register)
	e.POST("/auth/logout", a.Logout)
	e.GET("/auth/session", a.Session)

	ck := &CheckoutHTTP{App: d.App}
	e.POST("/checkout", ck.Stage)
	e.POST("/checkout/pay", ck.Pay)
	e.GET("/orders", ck.History)
	e.GET("/orders/last", ck.LastOrder)
}
