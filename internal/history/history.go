// Package history persists the append-only order history.
package history

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/okhotnikov/storefront/internal/models"
	"github.com/okhotnikov/storefront/internal/storage"
)

const key = "order_history"

type Store struct {
	KV *storage.KV
}

// Load returns the stored history, most-recent-first. A missing or
// unparseable entry yields an empty history; corruption is recovered by
// resetting, not by failing startup.
func (s *Store) Load(ctx context.Context) ([]models.Order, error) {
	raw, err := s.KV.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		if derr := s.KV.Delete(ctx, key); derr != nil {
			return nil, derr
		}
		return nil, nil
	}
	return orders, nil
}

// Save overwrites the stored history with the given snapshot.
func (s *Store) Save(ctx context.Context, orders []models.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.KV.Put(ctx, key, string(raw))
}
