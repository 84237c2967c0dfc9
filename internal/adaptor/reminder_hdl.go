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

type ReminderHandler struct {
	service usecase.ReminderService
	log     *zap.Logger
}

func NewReminderHandler(service usecase.ReminderService, log *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		service: service,
		log:     log,
	}
}

func pathReminderID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseNotFound(w, "reminder not found")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /api/reminders
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	reminders, err := h.service.List(r.Context(), userID, query.Get("status"), query.Get("customer_id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list reminders")
		return
	}

	utils.ResponseSuccess(w, "Reminders retrieved successfully", reminders)
}

// Get handles GET /api/reminders/{id}
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	reminderID, ok := pathReminderID(w, r)
	if !ok {
		return
	}

	reminder, err := h.service.Get(r.Context(), userID, reminderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get reminder")
		return
	}

	utils.ResponseSuccess(w, "Reminder retrieved successfully", reminder)
}

// Create handles POST /api/reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReminderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	reminder, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reminder")
		return
	}

	utils.ResponseCreated(w, "Reminder created successfully", reminder)
}

// Update handles PUT /api/reminders/{id}
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	reminderID, ok := pathReminderID(w, r)
	if !ok {
		return
	}

	var req request.UpdateReminderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	reminder, err := h.service.Update(r.Context(), userID, reminderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update reminder")
		return
	}

	utils.ResponseSuccess(w, "Reminder updated successfully", reminder)
}

// Delete handles DELETE /api/reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	reminderID, ok := pathReminderID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, reminderID); err != nil {
		handleServiceError(w, h.log, err, "delete reminder")
		return
	}

	utils.ResponseSuccess(w, "Reminder deleted successfully", nil)
}
