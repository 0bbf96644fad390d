// Package store holds the storefront state container: five independently
// owned slices (product, cart, wishlist, auth, payment), each advanced by
// a closed set of intents through a pure reducer. Dispatch is serialized,
// so a mutation is atomic from a subscriber's point of view; reducers
// copy-on-write, so a returned snapshot is never mutated afterwards.
package store

import "sync"

// Intent describes a requested state transition. The concrete types form
// a closed union: every intent belongs to exactly one slice and is
// handled exhaustively by that slice's reducer.
type Intent interface {
	intent()
}

// State is the full application state, one field per slice.
type State struct {
	Products ProductState
	Cart     CartState
	Wishlist WishlistState
	Auth     AuthState
	Payment  PaymentState
}

// Options fixes the policy choices the reducers need.
type Options struct {
	// ProductFallback decides what the product slice shows after a failed
	// fetch: FallbackEmpty clears the list, FallbackPlaceholder installs
	// a single sample product.
	ProductFallback FallbackPolicy
}

// Store owns the state and notifies subscribers after every dispatch.
type Store struct {
	mu    sync.Mutex
	state State
	opts  Options

	subs   map[int]func(State)
	nextID int
}

func New(opts Options) *Store {
	return &Store{
		opts: opts,
		subs: make(map[int]func(State)),
		state: State{
			Products: ProductState{Status: StatusIdle},
			Auth:     AuthState{Status: AuthAnonymous},
			Payment:  PaymentState{Status: StatusIdle},
		},
	}
}

// Dispatch applies one intent to its owning slice and returns the
// resulting snapshot. Unknown intents are rejected at compile time by the
// Intent union; an intent never touches another slice's subtree.
func (s *Store) Dispatch(in Intent) State {
	s.mu.Lock()
	switch in := in.(type) {
	case ProductIntent:
		s.state.Products = reduceProducts(s.state.Products, in, s.opts)
	case CartIntent:
		s.state.Cart = reduceCart(s.state.Cart, in)
	case WishlistIntent:
		s.state.Wishlist = reduceWishlist(s.state.Wishlist, in)
	case AuthIntent:
		s.state.Auth = reduceAuth(s.state.Auth, in)
	case PaymentIntent:
		s.state.Payment = reducePayment(s.state.Payment, in)
	}
	snapshot := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return snapshot
}

// Snapshot returns the current state without dispatching.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every dispatch with the fresh
// snapshot. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}
