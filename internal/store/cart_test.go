package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhotnikov/storefront/internal/models"
)

func product(id int, price string) models.Product {
	return models.Product{
		ID:    id,
		Title: "product",
		Price: decimal.RequireFromString(price),
	}
}

func TestCart_AddAccumulatesIntoSingleLine(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	p := product(7, "30")

	s.Dispatch(AddToCart{Product: p, Quantity: 1})
	s.Dispatch(AddToCart{Product: p, Quantity: 2})
	s.Dispatch(AddToCart{Product: p, Quantity: 3})

	lines := s.Snapshot().Cart.Lines
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].ProductID)
	assert.Equal(t, 6, lines[0].Quantity)
}

func TestCart_AddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(1, "10"), Quantity: 0})

	lines := s.Snapshot().Cart.Lines
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_DistinctProductsGetDistinctLines(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(1, "10"), Quantity: 1})
	s.Dispatch(AddToCart{Product: product(2, "20"), Quantity: 1})

	require.Len(t, s.Snapshot().Cart.Lines, 2)
}

func TestCart_DecrementFloorsAtOne(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(3, "15"), Quantity: 2})

	s.Dispatch(DecrementQuantity{ProductID: 3})
	require.Equal(t, 1, s.Snapshot().Cart.Lines[0].Quantity)

	// Decrementing a quantity-1 line holds at 1, it never removes.
	s.Dispatch(DecrementQuantity{ProductID: 3})
	lines := s.Snapshot().Cart.Lines
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_IncrementAndDecrementUnknownIDAreNoops(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(3, "15"), Quantity: 1})

	before := s.Snapshot().Cart
	s.Dispatch(IncrementQuantity{ProductID: 99})
	s.Dispatch(DecrementQuantity{ProductID: 99})
	assert.Equal(t, before.Lines, s.Snapshot().Cart.Lines)
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(5, "12"), Quantity: 4})

	s.Dispatch(RemoveFromCart{ProductID: 5})
	require.Empty(t, s.Snapshot().Cart.Lines)

	s.Dispatch(RemoveFromCart{ProductID: 5})
	assert.Empty(t, s.Snapshot().Cart.Lines)
}

func TestCart_SnapshotIsNotAliasedByLaterDispatches(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToCart{Product: product(1, "10"), Quantity: 1})

	before := s.Snapshot().Cart.Lines
	s.Dispatch(IncrementQuantity{ProductID: 1})

	require.Equal(t, 1, before[0].Quantity, "earlier snapshot must not see later mutations")
	assert.Equal(t, 2, s.Snapshot().Cart.Lines[0].Quantity)
}
