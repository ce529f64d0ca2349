package interfaces

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/finance/domain"
)

type UserServiceInterface interface {
	CreateUser(name, email string) (*domain.User, error)
	GetUser(userID int64) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateUser(userID int64, name, email *string) (*domain.User, error)
	DeleteUser(userID int64) error
}

type UserHandler struct {
	service      UserServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewUserHandler(
	service UserServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *UserHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &UserHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(req.Name, req.Email)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create user")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "User successfully created.",
		"data":    user,
	})
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve user")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "User retrieved successfully.",
		"data":    user,
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	users, err := h.service.ListUsers()
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Users retrieved successfully.",
		"data":    users,
	})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(userID, req.Name, req.Email)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update user")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "User successfully updated.",
		"data":    user,
	})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(r, "userID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(userID); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
