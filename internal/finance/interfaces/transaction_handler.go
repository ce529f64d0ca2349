package interfaces

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/internal/export"
	"fintrack/internal/finance/application"
	"fintrack/internal/finance/domain"
)

type TransactionServiceInterface interface {
	CreateTransaction(amount float64, date time.Time, description, transactionType string, userID, categoryID int64) (*domain.Transaction, error)
	GetTransaction(transactionID int64) (*domain.Transaction, error)
	ListTransactions(userID *int64, transactionType, orderBy, order string) ([]domain.Transaction, error)
	UpdateTransaction(transactionID int64, amount *float64, date *time.Time, description, transactionType *string, categoryID *int64) (*domain.Transaction, error)
	DeleteTransaction(transactionID int64) error
	Balance(userID int64) (float64, error)
	Summary(userID int64) (*application.Summary, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      float64 `json:"amount"`
		Date        string  `json:"date"`
		Description string  `json:"description"`
		Type        string  `json:"type"`
		UserID      int64   `json:"user_id"`
		CategoryID  int64   `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	transaction, err := h.service.CreateTransaction(
		req.Amount, date, req.Description, req.Type, req.UserID, req.CategoryID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to create transaction")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully created.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parseIDParam(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransaction(transactionID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction retrieved successfully.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var userID *int64
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid user_id value")
			return
		}
		userID = &parsed
	}

	orderBy := r.URL.Query().Get("order_by")
	if orderBy == "" {
		orderBy = "date"
	}
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "asc"
	}

	transactions, err := h.service.ListTransactions(userID, r.URL.Query().Get("type"), orderBy, order)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transactions retrieved successfully.",
		"data":    transactions,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parseIDParam(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var req struct {
		Amount      *float64 `json:"amount"`
		Date        *string  `json:"date"`
		Description *string  `json:"description"`
		Type        *string  `json:"type"`
		CategoryID  *int64   `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	transaction, err := h.service.UpdateTransaction(
		transactionID, req.Amount, date, req.Description, req.Type, req.CategoryID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to update transaction")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction successfully updated.",
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parseIDParam(r, "transactionID")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(transactionID); err != nil {
		respondDomainError(h.respondError, w, err, "Failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) requireUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		h.respondError(w, http.StatusBadRequest, "Missing user_id query parameter")
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid user_id value")
		return 0, false
	}
	return userID, true
}

func (h *TransactionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(userID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve transaction summary")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Transaction summary retrieved successfully.",
		"data":    summary,
	})
}

func (h *TransactionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	balance, err := h.service.Balance(userID)
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to retrieve balance")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": "Balance retrieved successfully.",
		"data": map[string]interface{}{
			"user_id": userID,
			"balance": balance,
		},
	})
}

func (h *TransactionHandler) ExportTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUserID(w, r)
	if !ok {
		return
	}

	transactions, err := h.service.ListTransactions(&userID, "", "date", "asc")
	if err != nil {
		respondDomainError(h.respondError, w, err, "Failed to export transactions")
		return
	}
	if len(transactions) == 0 {
		h.respondError(w, http.StatusNotFound, "No transactions found for this user")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(userID, time.Now())))
	if err := export.WriteTransactionsCSV(w, transactions); err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}
