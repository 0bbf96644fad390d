package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SubscribersSeeEveryDispatch(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	var seen []int
	unsub := s.Subscribe(func(st State) {
		seen = append(seen, len(st.Cart.Lines))
	})

	s.Dispatch(AddToCart{Product: product(1, "10"), Quantity: 1})
	s.Dispatch(AddToCart{Product: product(2, "20"), Quantity: 1})
	require.Equal(t, []int{1, 2}, seen)

	unsub()
	s.Dispatch(RemoveFromCart{ProductID: 1})
	assert.Equal(t, []int{1, 2}, seen, "no notifications after unsubscribe")
}

func TestStore_IntentsOnlyTouchOwningSlice(t *testing.T) {
	t.Parallel()

	s := New(Options{})
	s.Dispatch(AddToWishlist{Product: product(9, "5")})
	before := s.Snapshot()

	s.Dispatch(AddToCart{Product: product(1, "10"), Quantity: 1})
	after := s.Snapshot()

	assert.Equal(t, before.Wishlist, after.Wishlist)
	assert.Equal(t, before.Auth, after.Auth)
	assert.Equal(t, before.Products, after.Products)
	assert.Equal(t, before.Payment, after.Payment)
	assert.NotEqual(t, before.Cart, after.Cart)
}
