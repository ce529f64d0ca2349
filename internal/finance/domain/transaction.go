package domain

import (
	"strings"
	"time"
)

const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// NormalizeType maps any case variant of the two accepted type values to its
// canonical form. The second return value is false for anything else.
func NormalizeType(t string) (string, bool) {
	switch {
	case strings.EqualFold(t, TypeIncome):
		return TypeIncome, true
	case strings.EqualFold(t, TypeExpense):
		return TypeExpense, true
	default:
		return "", false
	}
}

func IsIncome(t string) bool {
	return strings.EqualFold(t, TypeIncome)
}

func IsExpense(t string) bool {
	return strings.EqualFold(t, TypeExpense)
}

type Transaction struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	UserID      int64     `json:"user_id"`
	CategoryID  int64     `json:"category_id"`
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByID(transactionID int64) (*Transaction, error)
	FindAll() ([]Transaction, error)
	FindByUser(userID int64) ([]Transaction, error)
	// SumExpensesForMonth returns the total Expense amount recorded for the
	// user within the calendar month containing the given date.
	SumExpensesForMonth(userID int64, date time.Time) (float64, error)
	Update(transaction Transaction) error
	Delete(transactionID int64) error
}
