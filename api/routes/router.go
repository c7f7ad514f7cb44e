package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mokoena-ai/shopfront-backend/api/controllers"
	"github.com/mokoena-ai/shopfront-backend/api/middleware"
	"github.com/mokoena-ai/shopfront-backend/internal/cart"
	"github.com/mokoena-ai/shopfront-backend/internal/catalog"
	"github.com/mokoena-ai/shopfront-backend/internal/render"
	"github.com/mokoena-ai/shopfront-backend/internal/share"
	"github.com/mokoena-ai/shopfront-backend/pkg/config"
	"github.com/mokoena-ai/shopfront-backend/pkg/logger"
)

// NewRouter wires the catalogue snapshot, session cart store and renderer
// into the HTTP surface. loadErr non-nil means degraded mode: the page shows
// the failure, the API answers 503, and no session carts are created.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	products []catalog.Product,
	store *cart.Store,
	loadErr error,
) http.Handler {
	shareLinks := share.Build(cfg.Share.Link, cfg.Share.Message)
	renderer := render.New(cfg.Catalog.FallbackImg, cfg.Catalog.Currency, shareLinks)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, loadErr, len(products)))
	})

	// The embedded FS is rooted at "static", matching the URL prefix, so the
	// file server maps /static/placeholder.svg directly.
	r.Handle("/static/*", render.StaticHandler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(logg))

		r.Get("/", controllers.Page(products, store, renderer, loadErr, logg))
		r.Post("/cart/items/{sku}", controllers.PageSetQuantity(store, loadErr, logg))
		r.Post("/cart/clear", controllers.PageClearCart(store, loadErr, logg))

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/catalog", controllers.CatalogList(products, store, renderer, loadErr, logg))
			r.Get("/share", controllers.ShareLinks(shareLinks))
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(store, loadErr, logg))
				r.Put("/items/{sku}", controllers.CartSetQuantity(store, loadErr, logg))
				r.Post("/clear", controllers.CartClear(store, loadErr, logg))
			})
		})
	})

	return r
}
