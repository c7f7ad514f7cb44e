package cart

import (
	"testing"

	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
)

func fixtureCatalog() []catalog.Product {
	return []catalog.Product{
		{SKU: "A1", Name: "Mug", PriceExVAT: 10, Category: "Kitchen"},
		{SKU: "B2", Name: "Bowl", PriceExVAT: 20, Category: "Kitchen"},
	}
}

func TestInitializeSeedsFromHintsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{SKU: "A1", QtyHint: 2.9},
		{SKU: "B2", QtyHint: -3},
		{SKU: "C3"},
	}

	ledger := NewLedger()
	ledger.Initialize(products)

	if ledger.Quantity("A1") != 2 {
		t.Fatalf("hint should floor: got %d", ledger.Quantity("A1"))
	}
	if ledger.Quantity("B2") != 0 {
		t.Fatalf("negative hint should clamp to 0: got %d", ledger.Quantity("B2"))
	}
	if ledger.Quantity("C3") != 0 {
		t.Fatalf("absent hint should default to 0: got %d", ledger.Quantity("C3"))
	}

	// A later edit must survive re-initialization: presence-checked, never
	// overwritten.
	ledger.SetQuantity("A1", "7")
	ledger.Initialize(products)
	if ledger.Quantity("A1") != 7 {
		t.Fatalf("re-initialize must not overwrite: got %d", ledger.Quantity("A1"))
	}
}

func TestSetQuantityNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want int
	}{
		{"-3.7", 0},
		{"4.9", 4},
		{"3", 3},
		{"0", 0},
		{"-1", 0},
		{"", 0},
		{"abc", 0},
		{" 2 ", 2},
	}

	ledger := NewLedger()
	for _, tc := range cases {
		if got := ledger.SetQuantity("A1", tc.raw); got != tc.want {
			t.Fatalf("SetQuantity(%q): expected %d got %d", tc.raw, tc.want, got)
		}
		if ledger.Quantity("A1") != tc.want {
			t.Fatalf("SetQuantity(%q): stored %d", tc.raw, ledger.Quantity("A1"))
		}
	}
}

func TestSetQuantityAcceptsUnknownSKU(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Initialize(fixtureCatalog())
	ledger.SetQuantity("GHOST", "5")

	if ledger.Quantity("GHOST") != 5 {
		t.Fatal("unknown sku should still be recorded")
	}

	// The aggregate walks the catalogue, so the unknown entry never counts.
	totals := ledger.Aggregate(fixtureCatalog())
	if totals.Count != 0 || totals.Subtotal != 0 {
		t.Fatalf("unknown sku must not contribute: %+v", totals)
	}
}

func TestAggregateScenario(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Initialize(fixtureCatalog())
	ledger.SetQuantity("A1", "2")
	ledger.SetQuantity("B2", "1")

	totals := ledger.Aggregate(fixtureCatalog())
	if totals.Count != 3 {
		t.Fatalf("expected count 3, got %d", totals.Count)
	}
	if totals.Subtotal != 40 {
		t.Fatalf("expected subtotal 40, got %v", totals.Subtotal)
	}
	if totals.Currency != "R" {
		t.Fatalf("expected currency R, got %q", totals.Currency)
	}
}

func TestAggregateIsAdditiveBySKU(t *testing.T) {
	t.Parallel()

	products := fixtureCatalog()
	ledger := NewLedger()
	ledger.SetQuantity("A1", "2")
	ledger.SetQuantity("B2", "3")

	var want float64
	for _, p := range products {
		want += float64(ledger.Quantity(p.SKU)) * p.PriceExVAT.Float()
	}
	if got := ledger.Aggregate(products).Subtotal; got != want {
		t.Fatalf("sku-by-sku sum %v != subtotal %v", want, got)
	}
}

func TestAggregateCurrencyFromLastMatch(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{SKU: "A1", PriceExVAT: 10, Currency: "R"},
		{SKU: "B2", PriceExVAT: 5, Currency: "ZAR"},
	}
	ledger := NewLedger()
	ledger.SetQuantity("A1", "1")
	ledger.SetQuantity("B2", "1")

	if got := ledger.Aggregate(products).Currency; got != "ZAR" {
		t.Fatalf("expected last matching currency, got %q", got)
	}
}

func TestAggregateWithConfiguredCurrency(t *testing.T) {
	t.Parallel()

	products := []catalog.Product{
		{SKU: "A1", PriceExVAT: 10},
	}

	// Empty cart reports the configured symbol.
	if got := NewLedger().AggregateWith(products, "ZAR").Currency; got != "ZAR" {
		t.Fatalf("empty cart should use the configured symbol, got %q", got)
	}

	// A matching product without its own currency inherits it too.
	ledger := NewLedger()
	ledger.SetQuantity("A1", "1")
	if got := ledger.AggregateWith(products, "ZAR").Currency; got != "ZAR" {
		t.Fatalf("currencyless product should use the configured symbol, got %q", got)
	}

	// A product currency still wins over the configured default.
	withCurrency := []catalog.Product{{SKU: "A1", PriceExVAT: 10, Currency: "USD"}}
	if got := ledger.AggregateWith(withCurrency, "ZAR").Currency; got != "USD" {
		t.Fatalf("product currency should win, got %q", got)
	}

	// Blank configuration falls back to the fixed default.
	if got := NewLedger().AggregateWith(products, "  ").Currency; got != catalog.DefaultCurrency {
		t.Fatalf("blank configured symbol should fall back, got %q", got)
	}
}

func TestClearZeroesWithoutRemovingKeys(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Initialize(fixtureCatalog())
	ledger.SetQuantity("A1", "4")

	ledger.Clear()

	if len(ledger) != 2 {
		t.Fatalf("clear must keep keys, have %d", len(ledger))
	}
	totals := ledger.Aggregate(fixtureCatalog())
	if totals.Count != 0 || totals.Subtotal != 0 {
		t.Fatalf("expected empty aggregate after clear: %+v", totals)
	}
	if totals.Currency != catalog.DefaultCurrency {
		t.Fatalf("empty cart uses the default symbol, got %q", totals.Currency)
	}
}

func TestCoerceQuantity(t *testing.T) {
	t.Parallel()

	if got := CoerceQuantity("-3.7"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := CoerceQuantity("4.9"); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := CoerceQuantity("NaN"); got != 0 {
		t.Fatalf("NaN should clamp to 0, got %d", got)
	}
	if got := CoerceQuantity("Inf"); got != 0 {
		t.Fatalf("Inf should clamp to 0, got %d", got)
	}
}
