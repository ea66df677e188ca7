// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/asfuyao/outcome/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	customerHandler *handlers.CustomerHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Customer CRUD.
		r.Get("/customers", customerHandler.ListCustomers)
		r.Post("/customers", customerHandler.CreateCustomer)
		r.Get("/customers/{id}", customerHandler.GetCustomer)
		r.Head("/customers/{id}", customerHandler.HeadCustomer)
		r.Patch("/customers/{id}", customerHandler.UpdateCustomer)
		r.Delete("/customers/{id}", customerHandler.DeleteCustomer)

		// Notification endpoints. The bulk route is registered before the
		// single route so chi does not treat "notify" as an {id}.
		r.Post("/customers/notify", customerHandler.BulkNotifyCustomers)
		r.Post("/customers/{id}/notify", customerHandler.NotifyCustomer)
	})

	return r
}
