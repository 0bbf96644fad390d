package app

import (
	"context"
	"fmt"

	"github.com/okhotnikov/storefront/internal/logging"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/store"
)

// FetchProducts runs the product-list task: pending, then the catalog
// call, then fulfilled or rejected. Concurrent fetches are not
// de-duplicated; the last response to land owns the slice.
func (a *App) FetchProducts(ctx context.Context, category string) ([]models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "app.fetch_products", "category", category)

	a.Store.Dispatch(store.ProductsFetchPending{})

	products, err := a.Catalog.Products(ctx, category)
	if err != nil {
		l.Error("fetch_products_failed", "error", err)
		a.Store.Dispatch(store.ProductsFetchRejected{Err: err.Error()})
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	a.Store.Dispatch(store.ProductsFetchFulfilled{Products: products})

	if err := a.Search.Index(ctx, products); err != nil {
		l.Warn("product index failed", "error", err)
	}

	l.Info("fetch_products_success", "count", len(products))
	return products, nil
}

// Product returns one product, preferring the already fetched list over
// a fresh catalog call.
func (a *App) Product(ctx context.Context, id int) (*models.Product, error) {
	for _, p := range a.Store.Snapshot().Products.Data {
		if p.ID == id {
			return &p, nil
		}
	}

	p, err := a.Catalog.Product(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", id, err)
	}
	return p, nil
}

// Categories lists the catalog categories for navigation.
func (a *App) Categories(ctx context.Context) ([]string, error) {
	cats, err := a.Catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return cats, nil
}

// SearchProducts queries the product index built from the last
// successful fetch.
func (a *App) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query required", ErrValidation)
	}
	return a.Search.Search(ctx, query)
}
