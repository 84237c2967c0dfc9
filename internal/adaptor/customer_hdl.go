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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log,
	}
}

// pathCustomerID parses the {id} path parameter. A malformed uuid maps
// to 404 so that probing ids cannot distinguish bad from missing.
func pathCustomerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "customer not found")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /api/customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.ListCustomersRequest{
		Page:        utils.ParseInt(query.Get("page"), 1),
		PerPage:     pageSize(query),
		Search:      query.Get("search"),
		WithBalance: query.Get("with_balance") == "true",
	}

	customers, err := h.service.List(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved successfully", customers)
}

// Get handles GET /api/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	customerID, ok := pathCustomerID(w, r)
	if !ok {
		return
	}

	customer, err := h.service.Get(r.Context(), userID, customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "Customer retrieved successfully", customer)
}

// Create handles POST /api/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	customer, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "Customer created successfully", customer)
}

// Update handles PUT /api/customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	customerID, ok := pathCustomerID(w, r)
	if !ok {
		return
	}

	var req request.UpdateCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	customer, err := h.service.Update(r.Context(), userID, customerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "Customer updated successfully", customer)
}

// Delete handles DELETE /api/customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	customerID, ok := pathCustomerID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, customerID); err != nil {
		handleServiceError(w, h.log, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, "Customer deleted successfully", nil)
}
