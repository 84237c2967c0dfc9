package adaptor

import (
	"net/http"
	"time"

	"ledger-book/internal/usecase"
	"ledger-book/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// parsePeriod reads the optional start_date/end_date query parameters.
// A malformed date is reported as a 400 rather than silently dropped,
// since a report over the wrong period is worse than an error.
func parsePeriod(w http.ResponseWriter, query map[string][]string) (start, end *time.Time, ok bool) {
	if values := query["start_date"]; len(values) > 0 && values[0] != "" {
		parsed, err := utils.ParseDate(values[0])
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date format. Use YYYY-MM-DD", map[string]string{"start_date": values[0]})
			return nil, nil, false
		}
		start = &parsed
	}
	if values := query["end_date"]; len(values) > 0 && values[0] != "" {
		parsed, err := utils.ParseDate(values[0])
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid date format. Use YYYY-MM-DD", map[string]string{"end_date": values[0]})
			return nil, nil, false
		}
		end = &parsed
	}
	return start, end, true
}

// Balance handles GET /api/reports/balance
func (h *ReportHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var customerID *uuid.UUID
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseNotFound(w, "customer not found")
			return
		}
		customerID = &id
	}

	report, err := h.service.Balance(r.Context(), userID, customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get balance report")
		return
	}

	utils.ResponseSuccess(w, "Balance retrieved successfully", report)
}

// Summary handles GET /api/reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	start, end, ok := parsePeriod(w, r.URL.Query())
	if !ok {
		return
	}

	report, err := h.service.Summary(r.Context(), userID, start, end)
	if err != nil {
		handleServiceError(w, h.log, err, "get summary report")
		return
	}

	utils.ResponseSuccess(w, "Summary retrieved successfully", report)
}

// Customer handles GET /api/reports/customer
func (h *ReportHandler) Customer(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	raw := r.URL.Query().Get("customer_id")
	if raw == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}
	customerID, err := uuid.Parse(raw)
	if err != nil {
		utils.ResponseNotFound(w, "customer not found")
		return
	}

	start, end, ok := parsePeriod(w, r.URL.Query())
	if !ok {
		return
	}

	report, err := h.service.CustomerReport(r.Context(), userID, customerID, start, end)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer report")
		return
	}

	utils.ResponseSuccess(w, "Customer report retrieved successfully", report)
}

// Dashboard handles GET /api/reports/dashboard
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	report, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", report)
}
