// Package search indexes the fetched catalog for product search. The
// elasticsearch index is used when configured; the in-memory index keeps
// search available without infrastructure.
package search

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/okhotnikov/storefront/internal/models"
)

type Index interface {
	// Index replaces the indexed products with the given set.
	Index(ctx context.Context, products []models.Product) error
	// Search matches query against title, description and category.
	Search(ctx context.Context, query string) ([]models.Product, error)
}

// Memory is a substring index over the last fetched product list.
type Memory struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Index(_ context.Context, products []models.Product) error {
	next := make([]models.Product, len(products))
	copy(next, products)
	m.mu.Lock()
	m.products = next
	m.mu.Unlock()
	return nil
}

func (m *Memory) Search(_ context.Context, query string) ([]models.Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	m.mu.RLock()
	defer m.mu.RUnlock()

	if q == "" {
		return nil, nil
	}

	type scored struct {
		p     models.Product
		score int
	}
	var hits []scored
	for _, p := range m.products {
		switch {
		case strings.Contains(strings.ToLower(p.Title), q):
			hits = append(hits, scored{p, 2})
		case strings.Contains(strings.ToLower(p.Description), q),
			strings.Contains(strings.ToLower(p.Category), q):
			hits = append(hits, scored{p, 1})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]models.Product, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out, nil
}
