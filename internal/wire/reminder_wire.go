package wire

import (
	"ledger-book/internal/adaptor"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReminder(r chi.Router, reminderHandler *adaptor.ReminderHandler, tokens *token.Manager, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/api/reminders", func(r chi.Router) {
		r.Get("/", reminderHandler.List)    // GET /api/reminders?status=pending
		r.Post("/", reminderHandler.Create) // POST /api/reminders
		r.Get("/{id}", reminderHandler.Get)
		r.Put("/{id}", reminderHandler.Update)
		r.Delete("/{id}", reminderHandler.Delete)
	})
}
