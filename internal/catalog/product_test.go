package catalog

import (
	"encoding/json"
	"testing"
)

func TestProductDecodeToleratesMissingAndMalformedFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		payload   string
		wantPrice float64
		wantQty   float64
	}{
		{"all fields", `{"sku":"A1","name":"Mug","priceExVat":10,"qty":2}`, 10, 2},
		{"price as string", `{"sku":"A1","priceExVat":"12.5"}`, 12.5, 0},
		{"price non-numeric", `{"sku":"A1","priceExVat":"ten"}`, 0, 0},
		{"price null", `{"sku":"A1","priceExVat":null}`, 0, 0},
		{"qty as object", `{"sku":"A1","qty":{"x":1}}`, 0, 0},
		{"everything missing", `{}`, 0, 0},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var p Product
			if err := json.Unmarshal([]byte(tc.payload), &p); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if got := p.PriceExVAT.Float(); got != tc.wantPrice {
				t.Fatalf("price: expected %v got %v", tc.wantPrice, got)
			}
			if got := p.QtyHint.Float(); got != tc.wantQty {
				t.Fatalf("qty hint: expected %v got %v", tc.wantQty, got)
			}
		})
	}
}

func TestSearchableJoinsAndLowercases(t *testing.T) {
	t.Parallel()

	p := Product{SKU: "A1", Name: "Mug", Brand: "Karoo", Category: "Kitchen"}
	got := p.Searchable()
	want := "a1 mug karoo kitchen"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestSearchableMissingFieldsContributeEmpty(t *testing.T) {
	t.Parallel()

	p := Product{Name: "Mug"}
	if got := p.Searchable(); got != "mug" {
		t.Fatalf("expected trimmed joined fields, got %q", got)
	}
}
