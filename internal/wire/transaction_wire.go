package wire

import (
	"ledger-book/internal/adaptor"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTransaction(r chi.Router, transactionHandler *adaptor.TransactionHandler, tokens *token.Manager, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/api/transactions", func(r chi.Router) {
		r.Get("/", transactionHandler.List)    // GET /api/transactions?type=credit&start_date=...
		r.Post("/", transactionHandler.Create) // POST /api/transactions
		r.Get("/{id}", transactionHandler.Get)
		r.Put("/{id}", transactionHandler.Update)
		r.Delete("/{id}", transactionHandler.Delete)
	})
}
