package controllers

import (
	"net/http"

	"github.com/mokoena-ai/shopfront-backend/api/responses"
	"github.com/mokoena-ai/shopfront-backend/pkg/config"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"env":    cfg.App.Env,
		})
	}
}

// HealthReady reports ready only once the catalogue snapshot loaded; in
// degraded mode it surfaces the load failure.
func HealthReady(cfg *config.Config, logg *logger.Logger, loadErr error, productCount int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadErr != nil {
			responses.WriteError(r.Context(), logg, w, catalogUnavailable(loadErr))
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"status":   "ready",
			"env":      cfg.App.Env,
			"products": productCount,
		})
	}
}
