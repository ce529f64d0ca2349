package application

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
	"fintrack/internal/log"
)

const defaultMonthlyLimit = 2000.0

type TransactionService struct {
	repo         domain.TransactionRepository
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
	monthlyLimit float64
	logger       *log.Logger
}

// NewTransactionService wires the transaction rules against the three
// repositories. monthlyLimit caps total Expense amount per user per calendar
// month; a non-positive value falls back to the default of 2000.0.
func NewTransactionService(
	repo domain.TransactionRepository,
	userRepo domain.UserRepository,
	categoryRepo domain.CategoryRepository,
	monthlyLimit float64,
	logger *log.Logger,
) *TransactionService {
	if monthlyLimit <= 0 {
		monthlyLimit = defaultMonthlyLimit
	}
	return &TransactionService{
		repo:         repo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		monthlyLimit: monthlyLimit,
		logger:       logger.WithComponent("transaction_service"),
	}
}

// checkUserCategory verifies that both referenced entities exist and that the
// category type is compatible with the transaction type.
func (s *TransactionService) checkUserCategory(userID, categoryID int64, transactionType string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(category.Type, transactionType) {
		return financeErrors.ErrTypeMismatch
	}
	return nil
}

func (s *TransactionService) CreateTransaction(
	amount float64,
	date time.Time,
	description string,
	transactionType string,
	userID, categoryID int64,
) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, financeErrors.NewValidationError("transaction amount must be greater than zero")
	}
	normalized, ok := domain.NormalizeType(transactionType)
	if !ok {
		return nil, financeErrors.NewValidationError("transaction type must be 'Income' or 'Expense'")
	}

	if err := s.checkUserCategory(userID, categoryID, normalized); err != nil {
		return nil, err
	}

	// Monthly cap applies to expenses only, and only at creation time.
	if normalized == domain.TypeExpense {
		monthTotal, err := s.repo.SumExpensesForMonth(userID, date)
		if err != nil {
			return nil, err
		}
		if monthTotal+amount > s.monthlyLimit {
			return nil, financeErrors.NewValidationErrorf(
				"monthly limit of %.2f exceeded: current total %.2f, attempted %.2f",
				s.monthlyLimit, monthTotal, amount,
			)
		}
	}

	transaction := &domain.Transaction{
		Amount:      amount,
		Date:        date,
		Description: strings.TrimSpace(description),
		Type:        normalized,
		UserID:      userID,
		CategoryID:  categoryID,
	}
	if err := s.repo.Save(transaction); err != nil {
		return nil, err
	}
	s.logger.Info("transaction created",
		"transaction_id", transaction.ID, "type", transaction.Type, "amount", transaction.Amount)
	return transaction, nil
}

func (s *TransactionService) GetTransaction(transactionID int64) (*domain.Transaction, error) {
	return s.repo.FindByID(transactionID)
}

// UpdateTransaction applies only the supplied fields. Changing the category
// (or the type) re-runs the type-compatibility check against the
// transaction's current user; the monthly cap is not re-checked here.
func (s *TransactionService) UpdateTransaction(
	transactionID int64,
	amount *float64,
	date *time.Time,
	description *string,
	transactionType *string,
	categoryID *int64,
) (*domain.Transaction, error) {
	transaction, err := s.repo.FindByID(transactionID)
	if err != nil {
		return nil, err
	}

	if amount != nil {
		if *amount <= 0 {
			return nil, financeErrors.NewValidationError("transaction amount must be greater than zero")
		}
		transaction.Amount = *amount
	}

	if date != nil {
		transaction.Date = *date
	}

	if description != nil {
		transaction.Description = strings.TrimSpace(*description)
	}

	if transactionType != nil {
		normalized, ok := domain.NormalizeType(*transactionType)
		if !ok {
			return nil, financeErrors.NewValidationError("transaction type must be 'Income' or 'Expense'")
		}
		transaction.Type = normalized
	}

	if categoryID != nil {
		if err := s.checkUserCategory(transaction.UserID, *categoryID, transaction.Type); err != nil {
			return nil, err
		}
		transaction.CategoryID = *categoryID
	}

	if err := s.repo.Update(*transaction); err != nil {
		return nil, err
	}
	s.logger.Info("transaction updated", "transaction_id", transaction.ID)
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(transactionID int64) error {
	if _, err := s.repo.FindByID(transactionID); err != nil {
		return err
	}
	if err := s.repo.Delete(transactionID); err != nil {
		return err
	}
	s.logger.Warn("transaction deleted", "transaction_id", transactionID)
	return nil
}

// transactionSortFields maps the accepted order_by values to comparators.
var transactionSortFields = map[string]func(a, b domain.Transaction) bool{
	"id":          func(a, b domain.Transaction) bool { return a.ID < b.ID },
	"amount":      func(a, b domain.Transaction) bool { return a.Amount < b.Amount },
	"date":        func(a, b domain.Transaction) bool { return a.Date.Before(b.Date) },
	"description": func(a, b domain.Transaction) bool { return a.Description < b.Description },
	"type":        func(a, b domain.Transaction) bool { return a.Type < b.Type },
	"user_id":     func(a, b domain.Transaction) bool { return a.UserID < b.UserID },
	"category_id": func(a, b domain.Transaction) bool { return a.CategoryID < b.CategoryID },
}

// ListTransactions filters by user and/or type when given and sorts by the
// named field. An unknown sort field is a validation failure.
func (s *TransactionService) ListTransactions(
	userID *int64,
	transactionType string,
	orderBy string,
	order string,
) ([]domain.Transaction, error) {
	if orderBy == "" {
		orderBy = "date"
	}
	less, ok := transactionSortFields[orderBy]
	if !ok {
		return nil, financeErrors.NewValidationErrorf("invalid sort field '%s'", orderBy)
	}

	var transactions []domain.Transaction
	var err error
	if userID != nil {
		transactions, err = s.repo.FindByUser(*userID)
	} else {
		transactions, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, err
	}

	if transactionType != "" {
		filtered := transactions[:0]
		for _, transaction := range transactions {
			if strings.EqualFold(transaction.Type, transactionType) {
				filtered = append(filtered, transaction)
			}
		}
		transactions = filtered
	}

	reverse := strings.EqualFold(order, "desc")
	sort.SliceStable(transactions, func(i, j int) bool {
		if reverse {
			i, j = j, i
		}
		return less(transactions[i], transactions[j])
	})

	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// Balance returns income minus expenses across all of the user's
// transactions. Read-only; repeated calls give the same result absent
// mutation.
func (s *TransactionService) Balance(userID int64) (float64, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, transaction := range transactions {
		if domain.IsIncome(transaction.Type) {
			total += transaction.Amount
		} else if domain.IsExpense(transaction.Type) {
			total -= transaction.Amount
		}
	}
	return total, nil
}

type Summary struct {
	UserID  int64   `json:"user_id"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summary partitions the user's transactions into income and expense totals.
func (s *TransactionService) Summary(userID int64) (*Summary, error) {
	transactions, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{UserID: userID}
	for _, transaction := range transactions {
		if domain.IsIncome(transaction.Type) {
			summary.Income += transaction.Amount
		} else if domain.IsExpense(transaction.Type) {
			summary.Expense += transaction.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}
