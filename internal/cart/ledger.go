package cart

import (
	"math"
	"strconv"
	"strings"

	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
)

// Ledger maps sku to a non-negative integer quantity. Keys are inserted at
// initialization (and for direct edits) and never removed; Clear only zeroes
// them.
type Ledger map[string]int

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{}
}

// Initialize seeds one entry per product from its quantity hint, clamped to
// >=0 and floored to an integer. Idempotent: an sku already present is left
// untouched, checked by presence rather than overwritten.
func (l Ledger) Initialize(products []catalog.Product) {
	for _, p := range products {
		if _, ok := l[p.SKU]; ok {
			continue
		}
		l[p.SKU] = clampQuantity(p.QtyHint.Float())
	}
}

// SetQuantity coerces the raw value and stores it under sku. Unknown skus are
// recorded too; the ledger is a generic mapping, and unknown entries simply
// never contribute to the aggregate because aggregation walks the catalogue.
// Returns the normalized quantity so callers can re-normalize their input
// field when it differs from what was typed.
func (l Ledger) SetQuantity(sku, raw string) int {
	qty := CoerceQuantity(raw)
	l[sku] = qty
	return qty
}

// Quantity returns the stored quantity for sku, zero when absent.
func (l Ledger) Quantity(sku string) int {
	return l[sku]
}

// Clear zeroes every existing entry without removing keys.
func (l Ledger) Clear() {
	for sku := range l {
		l[sku] = 0
	}
}

// Totals summarizes the ledger against the catalogue.
type Totals struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Currency string  `json:"currency"`
}

// Aggregate walks the catalogue (not the ledger) summing quantity times
// price for every product with a positive quantity. The currency comes from
// the last matching product, defaulting to the fixed symbol when the cart is
// empty.
func (l Ledger) Aggregate(products []catalog.Product) Totals {
	return l.AggregateWith(products, catalog.DefaultCurrency)
}

// AggregateWith is Aggregate with a configurable currency symbol substituted
// wherever the fixed default would apply: the empty cart and products that
// carry no currency of their own.
func (l Ledger) AggregateWith(products []catalog.Product, defaultCurrency string) Totals {
	if strings.TrimSpace(defaultCurrency) == "" {
		defaultCurrency = catalog.DefaultCurrency
	}
	totals := Totals{Currency: defaultCurrency}
	for _, p := range products {
		qty := l[p.SKU]
		if qty <= 0 {
			continue
		}
		totals.Count += qty
		totals.Subtotal += float64(qty) * p.PriceExVAT.Float()
		if currency := strings.TrimSpace(p.Currency); currency != "" {
			totals.Currency = currency
		} else {
			totals.Currency = defaultCurrency
		}
	}
	return totals
}

// Snapshot returns a copy of the mapping for read-only rendering.
func (l Ledger) Snapshot() map[string]int {
	out := make(map[string]int, len(l))
	for sku, qty := range l {
		out[sku] = qty
	}
	return out
}

// CoerceQuantity parses a raw quantity edit: numeric coercion, floored,
// clamped to >=0. Anything non-numeric becomes 0.
func CoerceQuantity(raw string) int {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return clampQuantity(value)
}

func clampQuantity(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	floored := int(math.Floor(value))
	if floored < 0 {
		return 0
	}
	return floored
}
