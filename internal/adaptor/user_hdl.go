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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// authorizedUserID resolves the {id} path parameter against the
// authenticated user. Users may only touch their own record, so any
// mismatch is a 403 and a malformed id a 404. An empty id means the
// caller used the bare /api/users route and gets their own record.
func (h *UserHandler) authorizedUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	authID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return uuid.Nil, false
	}

	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		return authID, true
	}

	id, err := uuid.Parse(pathID)
	if err != nil {
		utils.ResponseNotFound(w, "user not found")
		return uuid.Nil, false
	}
	if id != authID {
		utils.ResponseForbidden(w, "Access denied")
		return uuid.Nil, false
	}
	return id, true
}

// Get handles GET /api/users/{id} and GET /api/users/profile
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUserID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUserID(w, r)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !validateBody(w, &req) {
		return
	}

	user, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// Delete handles DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorizedUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}
