package store

import "github.com/okhotnikov/storefront/internal/models"

// WishlistState keeps full product snapshots in insertion order, at most
// one per product id.
type WishlistState struct {
	Items []models.Product
}

type WishlistIntent interface {
	Intent
	wishlistIntent()
}

type AddToWishlist struct {
	Product models.Product
}

type RemoveFromWishlist struct {
	ProductID int
}

func (AddToWishlist) intent()              {}
func (AddToWishlist) wishlistIntent()      {}
func (RemoveFromWishlist) intent()         {}
func (RemoveFromWishlist) wishlistIntent() {}

func reduceWishlist(st WishlistState, in WishlistIntent) WishlistState {
	switch in := in.(type) {
	case AddToWishlist:
		for _, p := range st.Items {
			if p.ID == in.Product.ID {
				return st
			}
		}
		next := make([]models.Product, len(st.Items), len(st.Items)+1)
		copy(next, st.Items)
		st.Items = append(next, in.Product)

	case RemoveFromWishlist:
		next := make([]models.Product, 0, len(st.Items))
		for _, p := range st.Items {
			if p.ID != in.ProductID {
				next = append(next, p)
			}
		}
		st.Items = next
	}
	return st
}
