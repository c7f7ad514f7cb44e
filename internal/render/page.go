// Package render turns the derived view and cart ledger into the page view
// model and its HTML representation. Every render is a full rebuild; nothing
// is diffed or memoized between requests.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
	"github.com/mokoena-ai/shopfront-backend/internal/share"
)

// Card is one product in the derived view, display-ready.
type Card struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Brand          string `json:"brand,omitempty"`
	Category       string `json:"category,omitempty"`
	Description    string `json:"description,omitempty"`
	ImageURL       string `json:"imageUrl"`
	PriceFormatted string `json:"priceFormatted"`
	Quantity       int    `json:"quantity"`
}

// Page is the full view model: scalar display regions, control state, the
// ordered cards and the share links.
type Page struct {
	Query             string      `json:"query"`
	Category          string      `json:"category"`
	Sort              string      `json:"sort"`
	Categories        []string    `json:"categories"`
	ResultsCount      int         `json:"resultsCount"`
	Totals            cart.Totals `json:"totals"`
	SubtotalFormatted string      `json:"subtotalFormatted"`
	Cards             []Card      `json:"cards"`
	Share             share.Links `json:"share"`
	FallbackImage     string      `json:"fallbackImage"`

	// LoadFailure carries the catalogue load error in degraded mode; the
	// listing region is replaced by it and no controls are wired.
	LoadFailure string `json:"loadFailure,omitempty"`
	LoadHint    string `json:"loadHint,omitempty"`
}

// Renderer builds pages against a fixed fallback image, default currency
// symbol and share payload.
type Renderer struct {
	fallbackImage string
	currency      string
	shareLinks    share.Links
}

func New(fallbackImage, currency string, shareLinks share.Links) *Renderer {
	if strings.TrimSpace(fallbackImage) == "" {
		fallbackImage = "/static/placeholder.svg"
	}
	if strings.TrimSpace(currency) == "" {
		currency = catalog.DefaultCurrency
	}
	return &Renderer{fallbackImage: fallbackImage, currency: currency, shareLinks: shareLinks}
}

// BuildPage recomputes the derived view and aggregate and assembles the full
// page view model, one card per product in view order.
func (r *Renderer) BuildPage(products []catalog.Product, state catalog.ViewState, ledger cart.Ledger) Page {
	state = catalog.NormalizedViewState(state.Query, state.Category, state.Sort)
	view := catalog.DeriveView(products, state)
	totals := ledger.AggregateWith(products, r.currency)

	cards := make([]Card, 0, len(view))
	for _, p := range view {
		cards = append(cards, Card{
			SKU:            p.SKU,
			Name:           p.Name,
			Brand:          p.Brand,
			Category:       p.Category,
			Description:    p.Description,
			ImageURL:       r.imageOrFallback(p.ImageURL),
			PriceFormatted: r.money(p.Currency, p.PriceExVAT.Float()),
			Quantity:       ledger.Quantity(p.SKU),
		})
	}

	return Page{
		Query:             state.Query,
		Category:          state.Category,
		Sort:              state.Sort,
		Categories:        catalog.Categories(products),
		ResultsCount:      len(cards),
		Totals:            totals,
		SubtotalFormatted: r.money(totals.Currency, totals.Subtotal),
		Cards:             cards,
		Share:             r.shareLinks,
		FallbackImage:     r.fallbackImage,
	}
}

// FailurePage is the degraded-mode view: the load failure reason plus the
// retrieval hint replace the listing region.
func (r *Renderer) FailurePage(loadErr error) Page {
	reason := "catalogue unavailable"
	if loadErr != nil {
		reason = loadErr.Error()
	}
	return Page{
		Category:      catalog.CategoryAll,
		Sort:          catalog.SortNameAsc,
		Share:         r.shareLinks,
		FallbackImage: r.fallbackImage,
		LoadFailure:   reason,
		LoadHint:      catalog.FetchHint,
	}
}

// money formats against the renderer's configured default symbol rather than
// the fixed one.
func (r *Renderer) money(currency string, amount float64) string {
	if strings.TrimSpace(currency) == "" {
		currency = r.currency
	}
	return FormatMoney(currency, amount)
}

// imageOrFallback substitutes the fallback reference when the trimmed URL is
// empty, so the client never attempts a load against an empty source.
func (r *Renderer) imageOrFallback(imageURL string) string {
	if strings.TrimSpace(imageURL) == "" {
		return r.fallbackImage
	}
	return imageURL
}

// FormatMoney renders "<currency> <amount>" with exactly two decimals.
// Non-finite amounts render as zero.
func FormatMoney(currency string, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if strings.TrimSpace(currency) == "" {
		currency = catalog.DefaultCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}
