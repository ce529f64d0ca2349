package interfaces

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/finance/domain"
)

type CategoryServiceInterface interface {
	CreateCategory(name, categoryType string) (*domain.Category, error)
	GetCategory(categoryID int64) (*domain.Category, error)
	ListCategories(categoryType, order string) ([]domain.Category, error)
	UpdateCategory(categoryID int64, name, categoryType *string) (*domain.Category, error)
	DeleteCategory(categoryID int64) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(req.Name, req.Type)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create category")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully created.",
		"data":    category,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseIDParam(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category retrieved successfully.",
		"data":    category,
	})
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categoryType := r.URL.Query().Get("type")
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "asc"
	}

	categories, err := h.service.ListCategories(categoryType, order)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve categories")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Categories retrieved successfully.",
		"data":    categories,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseIDParam(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req struct {
		Name *string `json:"name"`
		Type *string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, req.Name, req.Type)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update category")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Category successfully updated.",
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parseIDParam(r, "categoryID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
