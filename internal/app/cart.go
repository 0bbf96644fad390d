package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/okhotnikov/storefront/internal/events"
	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/store"
)

// AddToCart resolves the product and adds quantity of it to the cart,
// merging into an existing line when one is present.
func (a *App) AddToCart(ctx context.Context, productID, quantity int) (store.CartState, error) {
	if quantity < 1 {
		quantity = 1
	}

	p, err := a.Product(ctx, productID)
	if err != nil {
		return store.CartState{}, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}

	st := a.Store.Dispatch(store.AddToCart{Product: *p, Quantity: quantity})
	a.publish(ctx, events.TopicCart, strconv.Itoa(productID), map[string]any{
		"type":       "cart_item_added",
		"product_id": productID,
		"quantity":   quantity,
	})
	return st.Cart, nil
}

func (a *App) IncrementCartItem(ctx context.Context, productID int) store.CartState {
	st := a.Store.Dispatch(store.IncrementQuantity{ProductID: productID})
	a.publish(ctx, events.TopicCart, strconv.Itoa(productID), map[string]any{
		"type":       "cart_item_incremented",
		"product_id": productID,
	})
	return st.Cart
}

func (a *App) DecrementCartItem(ctx context.Context, productID int) store.CartState {
	st := a.Store.Dispatch(store.DecrementQuantity{ProductID: productID})
	a.publish(ctx, events.TopicCart, strconv.Itoa(productID), map[string]any{
		"type":       "cart_item_decremented",
		"product_id": productID,
	})
	return st.Cart
}

func (a *App) RemoveCartItem(ctx context.Context, productID int) store.CartState {
	st := a.Store.Dispatch(store.RemoveFromCart{ProductID: productID})
	a.publish(ctx, events.TopicCart, strconv.Itoa(productID), map[string]any{
		"type":       "cart_item_removed",
		"product_id": productID,
	})
	return st.Cart
}

// CartTotals computes the derived checkout numbers for the current cart.
// Every caller goes through the same policy, so the cart view, checkout
// and confirmation always agree.
func (a *App) CartTotals() models.Totals {
	return models.ComputeTotals(a.Store.Snapshot().Cart.Lines, a.Pricing)
}

// AddToWishlist is a set insert: adding an already wishlisted product is
// a no-op.
func (a *App) AddToWishlist(ctx context.Context, productID int) (store.WishlistState, error) {
	p, err := a.Product(ctx, productID)
	if err != nil {
		return store.WishlistState{}, fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	st := a.Store.Dispatch(store.AddToWishlist{Product: *p})
	return st.Wishlist, nil
}

func (a *App) RemoveFromWishlist(_ context.Context, productID int) store.WishlistState {
	return a.Store.Dispatch(store.RemoveFromWishlist{ProductID: productID}).Wishlist
}

// MoveWishlistToCart adds the wishlisted product to the cart and drops it
// from the wishlist, in that order.
func (a *App) MoveWishlistToCart(ctx context.Context, productID int) (store.CartState, error) {
	var found *models.Product
	for _, p := range a.Store.Snapshot().Wishlist.Items {
		if p.ID == productID {
			found = &p
			break
		}
	}
	if found == nil {
		return store.CartState{}, fmt.Errorf("%w: product %d not wishlisted", ErrNotFound, productID)
	}

	a.Store.Dispatch(store.AddToCart{Product: *found, Quantity: 1})
	st := a.Store.Dispatch(store.RemoveFromWishlist{ProductID: productID})
	a.publish(ctx, events.TopicCart, strconv.Itoa(productID), map[string]any{
		"type":       "wishlist_moved_to_cart",
		"product_id": productID,
	})
	return st.Cart, nil
}
