package wire

import (
	"ledger-book/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the public registration and login routes.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register) // POST /api/auth/register
		r.Post("/login", authHandler.Login)       // POST /api/auth/login
	})
}
