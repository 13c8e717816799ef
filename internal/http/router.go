package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mgupta-labs/khata/internal/auth"
	authHandler "github.com/mgupta-labs/khata/internal/http/auth"
	inventoryHandler "github.com/mgupta-labs/khata/internal/http/inventory"
	ledgerHandler "github.com/mgupta-labs/khata/internal/http/ledger"
	partyHandler "github.com/mgupta-labs/khata/internal/http/party"
	reportHandler "github.com/mgupta-labs/khata/internal/http/report"
	"github.com/mgupta-labs/khata/internal/metrics"
)

func New(
	authSvc *auth.Service,
	authV1 *authHandler.Handler,
	partiesV1 *partyHandler.Handler,
	ledgerV1 *ledgerHandler.Handler,
	materialsV1 *inventoryHandler.Handler,
	dashboardV1 *reportHandler.Handler,
	health *HealthHandler,
	allowedOrigins []string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	router.Use(metrics.Middleware)

	router.Get("/healthz", health.Check)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/parties", func(r chi.Router) {
				partiesV1.Routes(r)

				r.Route("/{partyID}", func(r chi.Router) {
					partiesV1.DetailRoutes(r)
					ledgerV1.Routes(r)
				})
			})

			r.Get("/balances", ledgerV1.Balances)

			r.Route("/materials", materialsV1.Routes)

			r.Get("/dashboard", dashboardV1.Dashboard)
		})
	})

	return router
}
