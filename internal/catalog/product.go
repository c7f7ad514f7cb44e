package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultCurrency is the symbol used when a product record carries none.
const DefaultCurrency = "R"

// Product is one catalogue record. The feed is trusted for shape but not for
// field presence: every field tolerates absence and coerces to its zero
// fallback instead of failing the record.
type Product struct {
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PriceExVAT  FlexFloat `json:"priceExVat"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"imageUrl"`
	QtyHint     FlexFloat `json:"qty"`
}

// Searchable joins the fields the query filter matches against, lowercased
// and trimmed. Missing fields contribute empty strings.
func (p Product) Searchable() string {
	joined := strings.Join([]string{p.SKU, p.Name, p.Brand, p.Category, p.Description}, " ")
	return strings.ToLower(strings.TrimSpace(joined))
}

// FlexFloat decodes JSON numbers, numeric strings, null and absent values.
// Anything non-numeric coerces to 0 rather than failing the payload.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(parsed)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(n)
	return nil
}

func (f FlexFloat) Float() float64 {
	return float64(f)
}
