package store

import (
	"github.com/shopspring/decimal"

	"github.com/okhotnikov/storefront/internal/models"
)

// FallbackPolicy decides what replaces the product list after a failed fetch.
type FallbackPolicy string

const (
	FallbackEmpty       FallbackPolicy = "empty"
	FallbackPlaceholder FallbackPolicy = "placeholder"
)

type ProductState struct {
	Data   []models.Product
	Status AsyncStatus
	Error  string
}

// ProductIntent is the closed set of product slice transitions.
type ProductIntent interface {
	Intent
	productIntent()
}

type ProductsFetchPending struct{}

type ProductsFetchFulfilled struct {
	Products []models.Product
}

type ProductsFetchRejected struct {
	Err string
}

type ClearProductError struct{}

func (ProductsFetchPending) intent()          {}
func (ProductsFetchPending) productIntent()   {}
func (ProductsFetchFulfilled) intent()        {}
func (ProductsFetchFulfilled) productIntent() {}
func (ProductsFetchRejected) intent()         {}
func (ProductsFetchRejected) productIntent()  {}
func (ClearProductError) intent()             {}
func (ClearProductError) productIntent()      {}

// placeholderProducts is the bootstrap fallback list shown when a fetch
// fails under FallbackPlaceholder.
func placeholderProducts() []models.Product {
	return []models.Product{{
		ID:          1,
		Title:       "Sample Product",
		Price:       decimal.RequireFromString("29.99"),
		Description: "This is a sample product description.",
		Category:    "sample",
		Image:       "https://via.placeholder.com/300x300?text=Product",
		Rating:      models.Rating{Rate: 4.5, Count: 10},
	}}
}

// Concurrent fetches are not de-duplicated: the status field tracks the
// latest transition and the last response to arrive wins the Data field.
func reduceProducts(st ProductState, in ProductIntent, opts Options) ProductState {
	switch in := in.(type) {
	case ProductsFetchPending:
		st.Status = StatusLoading
		st.Error = ""
	case ProductsFetchFulfilled:
		st.Status = StatusSuccess
		st.Data = in.Products
		st.Error = ""
	case ProductsFetchRejected:
		st.Status = StatusFailed
		st.Error = in.Err
		if opts.ProductFallback == FallbackPlaceholder {
			st.Data = placeholderProducts()
		} else {
			st.Data = nil
		}
	case ClearProductError:
		st.Error = ""
	}
	return st
}
