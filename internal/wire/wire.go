// internal/wire/wire.go
package wire

import (
	"net/http"

	"ledger-book/internal/adaptor"
	"ledger-book/internal/data/repository"
	"ledger-book/internal/usecase"
	"ledger-book/pkg/middleware"
	"ledger-book/pkg/token"
	"ledger-book/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies and assembles the router.
func Wiring(repo *repository.Repository, config *utils.Config, tokens *token.Manager, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, tokens *token.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Unknown paths and wrong methods keep the JSON envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireCustomer(r, handler.Customer, tokens, logger)
	wireTransaction(r, handler.Transaction, tokens, logger)
	wireReport(r, handler.Report, tokens, logger)
	wireReminder(r, handler.Reminder, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", nil)
	})

	return r
}
