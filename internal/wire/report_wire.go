package wire

import (
	"ledger-book/internal/adaptor"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, tokens *token.Manager, log *zap.Logger) {
	r.With(middleware.Auth(tokens, log)).Route("/api/reports", func(r chi.Router) {
		r.Get("/balance", reportHandler.Balance)   // GET /api/reports/balance?customer_id=...
		r.Get("/summary", reportHandler.Summary)   // GET /api/reports/summary?start_date=...&end_date=...
		r.Get("/customer", reportHandler.Customer) // GET /api/reports/customer?customer_id=...
		r.Get("/dashboard", reportHandler.Dashboard)
	})
}
