package store

import "github.com/okhotnikov/storefront/internal/models"

type CartState struct {
	Lines []models.CartLine
}

// CartIntent is the closed set of cart slice transitions.
type CartIntent interface {
	Intent
	cartIntent()
}

type AddToCart struct {
	Product  models.Product
	Quantity int
}

type IncrementQuantity struct {
	ProductID int
}

type DecrementQuantity struct {
	ProductID int
}

type RemoveFromCart struct {
	ProductID int
}

func (AddToCart) intent()             {}
func (AddToCart) cartIntent()         {}
func (IncrementQuantity) intent()     {}
func (IncrementQuantity) cartIntent() {}
func (DecrementQuantity) intent()     {}
func (DecrementQuantity) cartIntent() {}
func (RemoveFromCart) intent()        {}
func (RemoveFromCart) cartIntent()    {}

func reduceCart(st CartState, in CartIntent) CartState {
	switch in := in.(type) {
	case AddToCart:
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		next := make([]models.CartLine, len(st.Lines))
		copy(next, st.Lines)
		for i := range next {
			if next[i].ProductID == in.Product.ID {
				next[i].Quantity += qty
				st.Lines = next
				return st
			}
		}
		st.Lines = append(next, models.NewCartLine(in.Product, qty))

	case IncrementQuantity:
		st.Lines = adjustQuantity(st.Lines, in.ProductID, +1)

	case DecrementQuantity:
		st.Lines = adjustQuantity(st.Lines, in.ProductID, -1)

	case RemoveFromCart:
		next := make([]models.CartLine, 0, len(st.Lines))
		for _, l := range st.Lines {
			if l.ProductID != in.ProductID {
				next = append(next, l)
			}
		}
		st.Lines = next
	}
	return st
}

// adjustQuantity moves a line's quantity by delta, floored at 1. The
// floor is a contract: decrementing a quantity-1 line leaves it at 1,
// removal is only ever the explicit RemoveFromCart intent.
func adjustQuantity(lines []models.CartLine, productID, delta int) []models.CartLine {
	next := make([]models.CartLine, len(lines))
	copy(next, lines)
	for i := range next {
		if next[i].ProductID != productID {
			continue
		}
		q := next[i].Quantity + delta
		if q < 1 {
			q = 1
		}
		next[i].Quantity = q
		break
	}
	return next
}
