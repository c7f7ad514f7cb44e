package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mokoena-ai/shopfront-backend/api/middleware"
	"github.com/mokoena-ai/shopfront-backend/api/responses"
	"github.com/mokoena-ai/shopfront-backend/api/validators"
	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	pkgerrors "github.com/mokoena-ai/shopfront-backend/pkg/errors"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
)

// SetQuantityRequest accepts the raw quantity edit. The value arrives as a
// JSON number or string; coercion (floor, clamp to >=0, non-numeric to 0)
// happens in the ledger, so malformed values degrade instead of erroring.
type SetQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity" validate:"required"`
}

// CartView is the cart payload: per-sku quantities plus the aggregate.
type CartView struct {
	Quantities map[string]int `json:"quantities"`
	Totals     cart.Totals    `json:"totals"`
}

// QuantityResult echoes the normalized quantity so clients can re-normalize
// their input field when it differs from what was typed.
type QuantityResult struct {
	SKU      string      `json:"sku"`
	Quantity int         `json:"quantity"`
	Totals   cart.Totals `json:"totals"`
}

// CartFetch returns the session's cart.
func CartFetch(store *cart.Store, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			responses.WriteError(r.Context(), logg, w, catalogUnavailable(loadErr))
			return
		}
		sessionID, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		quantities, totals := store.View(sessionID)
		responses.WriteSuccess(w, CartView{Quantities: quantities, Totals: totals})
	}
}

// CartSetQuantity writes one quantity edit into the session ledger and
// responds with the normalized value and the fresh aggregate.
func CartSetQuantity(store *cart.Store, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			responses.WriteError(r.Context(), logg, w, catalogUnavailable(loadErr))
			return
		}
		sessionID, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sku := strings.TrimSpace(chi.URLParam(r, "sku"))
		if sku == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "sku is required"))
			return
		}

		var payload SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		qty, totals := store.SetQuantity(sessionID, sku, rawScalar(payload.Quantity))
		responses.WriteSuccess(w, QuantityResult{SKU: sku, Quantity: qty, Totals: totals})
	}
}

// CartClear zeroes every quantity in the session ledger.
func CartClear(store *cart.Store, loadErr error, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			responses.WriteError(r.Context(), logg, w, catalogUnavailable(loadErr))
			return
		}
		sessionID, err := sessionID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		totals := store.Clear(sessionID)
		responses.WriteSuccess(w, CartView{Quantities: nil, Totals: totals})
	}
}

func sessionID(r *http.Request) (string, error) {
	id := middleware.SessionIDFromContext(r.Context())
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session missing")
	}
	return id, nil
}

// rawScalar unquotes a JSON string scalar, otherwise returns the raw text.
func rawScalar(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
