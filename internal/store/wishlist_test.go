package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_AddIsSetInsert(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	p := product(11, "20")

	s.Dispatch(AddToWishlist{Product: p})
	s.Dispatch(AddToWishlist{Product: p})

	items := s.Snapshot().Wishlist.Items
	require.Len(t, items, 1)
	assert.Equal(t, 11, items[0].ID)
}

func TestWishlist_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToWishlist{Product: product(3, "1")})
	s.Dispatch(AddToWishlist{Product: product(1, "1")})
	s.Dispatch(AddToWishlist{Product: product(2, "1")})

	items := s.Snapshot().Wishlist.Items
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestWishlist_RemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToWishlist{Product: product(4, "9")})

	s.Dispatch(RemoveFromWishlist{ProductID: 4})
	require.Empty(t, s.Snapshot().Wishlist.Items)

	s.Dispatch(RemoveFromWishlist{ProductID: 4})
	assert.Empty(t, s.Snapshot().Wishlist.Items)
}
