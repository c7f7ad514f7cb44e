package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mokoena-ai/shopfront-backend/api/middleware"
	"github.com/mokoena-ai/shopfront-backend/api/validators"
	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
	"github.com/mokoena-ai/shopfront-backend/internal/render"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
)

// Page serves the server-rendered catalogue page. View state comes from the
// q/category/sort query parameters; the whole listing is rebuilt on every
// request. In degraded mode the listing region is replaced by the load
// failure and its retrieval hint.
func Page(products []catalog.Product, store *cart.Store, renderer *render.Renderer, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if loadErr != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			if err := render.WriteHTML(w, renderer.FailurePage(loadErr)); err != nil && logg != nil {
				logg.Error(r.Context(), "failed to render failure page", err)
			}
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		state := validators.ViewState(r)
		quantities, _ := store.View(sessionID)
		page := renderer.BuildPage(products, state, cart.Ledger(quantities))

		if err := render.WriteHTML(w, page); err != nil && logg != nil {
			logg.Error(r.Context(), "failed to render page", err)
		}
	}
}

// PageSetQuantity is the form fallback for a quantity edit: one mutation,
// then a redirect back to the page so the next GET performs the full
// re-render with the preserved view state.
func PageSetQuantity(store *cart.Store, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		sessionID := middleware.SessionIDFromContext(r.Context())
		sku := strings.TrimSpace(chi.URLParam(r, "sku"))
		if sessionID != "" && sku != "" {
			store.SetQuantity(sessionID, sku, r.FormValue("qty"))
		}
		http.Redirect(w, r, pageURL(r), http.StatusSeeOther)
	}
}

// PageClearCart is the form fallback for the clear-cart control.
func PageClearCart(store *cart.Store, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if sessionID := middleware.SessionIDFromContext(r.Context()); sessionID != "" {
			store.Clear(sessionID)
		}
		http.Redirect(w, r, pageURL(r), http.StatusSeeOther)
	}
}

// pageURL rebuilds the page address from the posted view-state fields so the
// redirect lands on the same filtered, sorted view.
func pageURL(r *http.Request) string {
	state := validators.ViewState(r)
	params := url.Values{}
	if state.Query != "" {
		params.Set("q", state.Query)
	}
	if state.Category != catalog.CategoryAll {
		params.Set("category", state.Category)
	}
	if state.Sort != catalog.SortNameAsc {
		params.Set("sort", state.Sort)
	}
	if len(params) == 0 {
		return "/"
	}
	return "/?" + params.Encode()
}
