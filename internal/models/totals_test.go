package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals_FreeShippingOverThreshold(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ProductID: 1, Price: dec("30"), Quantity: 2},
	}

	got := ComputeTotals(lines, DefaultPricing())

	assert.True(t, got.Subtotal.Equal(dec("60")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Shipping.Equal(decimal.Zero), "shipping %s", got.Shipping)
	assert.True(t, got.Tax.Equal(dec("4.80")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(dec("64.80")), "total %s", got.Total)
	assert.Equal(t, 2, got.Items)
}

func TestComputeTotals_FlatFeeUnderThreshold(t *testing.T) {
	t.Parallel()

	lines := []CartLine{
		{ProductID: 1, Price: dec("10.50"), Quantity: 1},
		{ProductID: 2, Price: dec("9.50"), Quantity: 2},
	}

	got := ComputeTotals(lines, DefaultPricing())

	require.True(t, got.Subtotal.Equal(dec("29.50")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Shipping.Equal(dec("5.99")), "shipping %s", got.Shipping)
	assert.True(t, got.Tax.Equal(dec("2.36")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(dec("37.85")), "total %s", got.Total)
	assert.Equal(t, 3, got.Items)
}

func TestComputeTotals_ExactlyThresholdStillPaysShipping(t *testing.T) {
	t.Parallel()

	lines := []CartLine{{ProductID: 1, Price: dec("50"), Quantity: 1}}

	got := ComputeTotals(lines, DefaultPricing())
	assert.True(t, got.Shipping.Equal(dec("5.99")), "threshold is strict: shipping %s", got.Shipping)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	t.Parallel()

	got := ComputeTotals(nil, DefaultPricing())
	assert.True(t, got.Subtotal.Equal(decimal.Zero))
	assert.Equal(t, 0, got.Items)
}

func TestCardMasked(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "spaced", number: "4242 4242 4242 4242", want: "**** **** **** 4242"},
		{name: "plain", number: "1234567812345678", want: "**** **** **** 5678"},
		{name: "short", number: "1234", want: "**** **** **** 1234"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			masked := Card{Number: tt.number, CVV: "123"}.Masked()
			assert.Equal(t, tt.want, masked.Number)
		})
	}
}

func TestSessionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Session{User: User{Username: "mor_2314"}, Token: "tok"}.Valid())
	assert.False(t, Session{User: User{Username: "mor_2314"}}.Valid())
	assert.False(t, Session{Token: "tok"}.Valid())
	assert.False(t, Session{User: User{Username: "  "}, Token: " "}.Valid())
}
