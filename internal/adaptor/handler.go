package adaptor

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"ledger-book/internal/usecase"
	"ledger-book/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Customer    *CustomerHandler
	Transaction *TransactionHandler
	Report      *ReportHandler
	Reminder    *ReminderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Customer:    NewCustomerHandler(service.Customer, log),
		Transaction: NewTransactionHandler(service.Transaction, log),
		Report:      NewReportHandler(service.Report, log),
		Reminder:    NewReminderHandler(service.Reminder, log),
	}
}

// decodeBody decodes a JSON request body and writes the 400 response
// itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// validateBody runs struct validation and writes the 400 response with
// per-field details itself on failure.
func validateBody(w http.ResponseWriter, data any) bool {
	if errs := utils.ValidateStruct(data); len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return false
	}
	return true
}

// pageSize reads the page size from list query parameters. The
// documented name is limit; per_page is kept as an alias.
func pageSize(query url.Values) int {
	if n := utils.ParseInt(query.Get("limit"), 0); n > 0 {
		return n
	}
	return utils.ParseInt(query.Get("per_page"), 0)
}

// handleServiceError maps service error messages onto HTTP statuses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid email or password"):
		log.Warn(operation+" failed - bad credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
