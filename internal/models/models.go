package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the catalog API representation. Products are immutable
// once fetched; the product slice owns them.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CartLine is one product in the cart with its display fields denormalized
// at the time of adding. At most one line exists per product id.
type CartLine struct {
	ProductID int             `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// NewCartLine snapshots the product fields a cart line displays.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  quantity,
	}
}

type User struct {
	Username string `json:"username"`
}

// Session is the authenticated state persisted across restarts.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Valid reports whether a session restored from storage is usable:
// both the token and the username must be present.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.Token) != "" && strings.TrimSpace(s.User.Username) != ""
}

type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
}

// Card carries the raw payment details the checkout form collects. It is
// never persisted; orders keep only the masked form.
type Card struct {
	Number         string `json:"card_number"`
	ExpiryDate     string `json:"expiry_date"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholder_name"`
}

// Masked returns the persistable view of the card: everything but the
// last four digits of the number is blanked out.
func (c Card) Masked() MaskedCard {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, c.Number)
	last4 := digits
	if len(digits) > 4 {
		last4 = digits[len(digits)-4:]
	}
	return MaskedCard{
		Number:         "**** **** **** " + last4,
		CardholderName: c.CardholderName,
	}
}

type MaskedCard struct {
	Number         string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
}

// OrderDraft is a staged, not-yet-finalized order awaiting payment.
type OrderDraft struct {
	Items    []CartLine   `json:"items"`
	Shipping ShippingInfo `json:"shipping_info"`
	Payment  MaskedCard   `json:"payment_info"`
	Totals   Totals       `json:"totals"`
	UserID   string       `json:"user_id"`
}

// Order is a finalized purchase: the staged draft merged with the
// gateway receipt. Orders are immutable once created.
type Order struct {
	OrderID       string       `json:"order_id"`
	TransactionID string       `json:"transaction_id"`
	Items         []CartLine   `json:"items"`
	Shipping      ShippingInfo `json:"shipping_info"`
	Payment       MaskedCard   `json:"payment_info"`
	Totals        Totals       `json:"totals"`
	UserID        string       `json:"user_id"`
	Status        string       `json:"status"`
	Timestamp     time.Time    `json:"timestamp"`
}
