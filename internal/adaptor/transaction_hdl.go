package adaptor

import (
	"net/http"

	"ledger-book/internal/dto/request"
	"ledger-book/internal/usecase"
	"ledger-book/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	service usecase.TransactionService
	log     *zap.Logger
}

func NewTransactionHandler(service usecase.TransactionService, log *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: service,
		log:     log,
	}
}

func pathTransactionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "transaction not found")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.ListTransactionsRequest{
		Page:       utils.ParseInt(query.Get("page"), 1),
		PerPage:    pageSize(query),
		CustomerID: query.Get("customer_id"),
		Type:       query.Get("type"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
		Search:     query.Get("search"),
	}

	transactions, err := h.service.List(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, "Transactions retrieved successfully", transactions)
}

// Get handles GET /api/transactions/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	transactionID, ok := pathTransactionID(w, r)
	if !ok {
		return
	}

	tx, err := h.service.Get(r.Context(), userID, transactionID)
	if err != nil {
		handleServiceError(w, h.log, err, "get transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction retrieved successfully", tx)
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	tx, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create transaction")
		return
	}

	utils.ResponseCreated(w, "Transaction created successfully", tx)
}

// Update handles PUT /api/transactions/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	transactionID, ok := pathTransactionID(w, r)
	if !ok {
		return
	}

	var req request.UpdateTransactionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	tx, err := h.service.Update(r.Context(), userID, transactionID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction updated successfully", tx)
}

// Delete handles DELETE /api/transactions/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	transactionID, ok := pathTransactionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, transactionID); err != nil {
		handleServiceError(w, h.log, err, "delete transaction")
		return
	}

	utils.ResponseSuccess(w, "Transaction deleted successfully", nil)
}
