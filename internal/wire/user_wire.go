package wire

import (
	"ledger-book/internal/adaptor"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the account routes. Every route requires a valid
// token, and the handler only ever operates on the caller's own record.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, tokens *token.Manager, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.Get)        // GET /api/users (caller's own record)
		r.Get("/profile", userHandler.Get) // GET /api/users/profile
		r.Get("/{id}", userHandler.Get)    // GET /api/users/{user-id}
		r.Put("/{id}", userHandler.Update) // PUT /api/users/{user-id}
		r.Delete("/{id}", userHandler.Delete)
	})
}
