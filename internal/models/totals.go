package models

import "github.com/shopspring/decimal"

// PricingPolicy holds the checkout pricing rules. Every surface that
// displays totals must go through ComputeTotals with the same policy so
// the cart view, the checkout review and the order confirmation can never
// disagree.
type PricingPolicy struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultPricing matches the storefront defaults: free shipping over $50,
// a flat $5.99 fee below it, 8% tax on the subtotal.
func DefaultPricing() PricingPolicy {
	return PricingPolicy{
		FreeShippingThreshold: decimal.NewFromInt(50),
		ShippingFee:           decimal.RequireFromString("5.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Items    int             `json:"items"`
}

// ComputeTotals derives the order totals from cart lines. Totals are
// never stored on the cart; they are recomputed from the lines on read.
func ComputeTotals(lines []CartLine, p PricingPolicy) Totals {
	subtotal := decimal.Zero
	items := 0
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items += l.Quantity
	}

	shipping := p.ShippingFee
	if subtotal.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(p.TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
		Items:    items,
	}
}
