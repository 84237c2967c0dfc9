package wire

import (
	"ledger-book/internal/adaptor"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler, tokens *token.Manager, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/api/customers", func(r chi.Router) {
		r.Get("/", customerHandler.List)    // GET /api/customers?page=1&search=...
		r.Post("/", customerHandler.Create) // POST /api/customers
		r.Get("/{id}", customerHandler.Get)
		r.Put("/{id}", customerHandler.Update)
		r.Delete("/{id}", customerHandler.Delete)
	})
}
