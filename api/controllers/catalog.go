package controllers

import (
	"net/http"

	"github.com/mokoena-ai/shopfront-backend/api/middleware"
	"github.com/mokoena-ai/shopfront-backend/api/responses"
	"github.com/mokoena-ai/shopfront-backend/api/validators"
	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
	"github.com/mokoena-ai/shopfront-backend/internal/render"
	pkgerrors "github.com/mokoena-ai/shopfront-backend/pkg/errors"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
)

// CatalogList serves the derived view as the full page view model: results
// count, category options, aggregate and one card per product in view order.
// Every request recomputes the whole view from the immutable snapshot.
func CatalogList(products []catalog.Product, store *cart.Store, renderer *render.Renderer, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			responses.WriteError(r.Context(), logg, w, catalogUnavailable(loadErr))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing"))
			return
		}

		state := validators.ViewState(r)
		quantities, _ := store.View(sessionID)
		page := renderer.BuildPage(products, state, cart.Ledger(quantities))
		responses.WriteSuccess(w, page)
	}
}

// catalogUnavailable maps the startup LoadError onto the coded-error
// taxonomy, carrying the failure reason and the retrieval hint.
func catalogUnavailable(loadErr error) *pkgerrors.Error {
	reason := "catalogue failed to load"
	if loadErr != nil {
		reason = loadErr.Error()
	}
	return pkgerrors.Wrap(pkgerrors.CodeCatalogLoad, loadErr, reason).
		WithDetails(map[string]any{"hint": catalog.FetchHint})
}
