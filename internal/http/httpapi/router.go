package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"foodbridge/internal/http/handlers"
	"foodbridge/internal/infra"
	"foodbridge/internal/middleware"
)

// NewRouter wires the middleware chain and the /v1 surface. AccessLog sits
// inside RequestID and Locale so every line carries request id and country.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimiddleware.RealIP,
		middleware.RequestID,
		middleware.Locale(cfg.DefaultLocale, lookup),
		middleware.AccessLog(logger),
		chimiddleware.Recoverer,
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Route("/listings", func(r chi.Router) {
			r.Post("/", app.ListingsCreate)
			r.Get("/", app.ListingsList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.ListingsGet)
				r.Patch("/", app.ListingsUpdate)
				r.Delete("/", app.ListingsDelete)
				r.Post("/claim", app.ListingsClaim)
			})
		})

		r.Route("/providers", func(r chi.Router) {
			r.Post("/", app.ProvidersCreate)
			r.Get("/", app.ProvidersList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.ProvidersGet)
				r.Patch("/", app.ProvidersUpdate)
				r.Delete("/", app.ProvidersDelete)
				r.Get("/contact", app.ProvidersContact)
			})
		})

		r.Route("/receivers", func(r chi.Router) {
			r.Post("/", app.ReceiversCreate)
			r.Get("/", app.ReceiversList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", app.ReceiversGet)
				r.Patch("/", app.ReceiversUpdate)
				r.Delete("/", app.ReceiversDelete)
				r.Get("/contact", app.ReceiversContact)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/reports", app.AnalyticsReports)
			r.Get("/reports/{name}", app.AnalyticsRun)
		})

		r.Post("/playground", app.PlaygroundRun)
	})

	return r
}
