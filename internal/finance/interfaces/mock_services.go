package interfaces

import (
	"strings"
	"time"

	"fintrack/internal/finance/application"
	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

// Lightweight in-memory services for handler tests. A non-nil failWith is
// returned from every method, which lets tests drive each error branch.

type MockUserService struct {
	users    []domain.User
	nextID   int64
	failWith error
}

func NewMockUserService() *MockUserService {
	return &MockUserService{nextID: 1}
}

func (m *MockUserService) CreateUser(name, email string) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	user := domain.User{ID: m.nextID, Name: name, Email: email}
	m.nextID++
	m.users = append(m.users, user)
	return &user, nil
}

func (m *MockUserService) GetUser(userID int64) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.ID == userID {
			u := user
			return &u, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserService) ListUsers() ([]domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]domain.User{}, m.users...), nil
}

func (m *MockUserService) UpdateUser(userID int64, name, email *string) (*domain.User, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.users {
		if m.users[i].ID == userID {
			if name != nil {
				m.users[i].Name = *name
			}
			if email != nil {
				m.users[i].Email = *email
			}
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserService) DeleteUser(userID int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.users {
		if m.users[i].ID == userID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrUserNotFound
}

type MockCategoryService struct {
	categories []domain.Category
	nextID     int64
	failWith   error
}

func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{nextID: 1}
}

func (m *MockCategoryService) CreateCategory(name, categoryType string) (*domain.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	category := domain.Category{ID: m.nextID, Name: name, Type: categoryType}
	m.nextID++
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) GetCategory(categoryID int64) (*domain.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, category := range m.categories {
		if category.ID == categoryID {
			c := category
			return &c, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) ListCategories(categoryType, order string) ([]domain.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := []domain.Category{}
	for _, category := range m.categories {
		if categoryType != "" && !strings.EqualFold(category.Type, categoryType) {
			continue
		}
		result = append(result, category)
	}
	return result, nil
}

func (m *MockCategoryService) UpdateCategory(categoryID int64, name, categoryType *string) (*domain.Category, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			if name != nil {
				m.categories[i].Name = *name
			}
			if categoryType != nil {
				m.categories[i].Type = *categoryType
			}
			c := m.categories[i]
			return &c, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) DeleteCategory(categoryID int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.categories {
		if m.categories[i].ID == categoryID {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

type MockTransactionService struct {
	transactions []domain.Transaction
	nextID       int64
	failWith     error
}

func NewMockTransactionService() *MockTransactionService {
	return &MockTransactionService{nextID: 1}
}

func (m *MockTransactionService) CreateTransaction(
	amount float64, date time.Time, description, transactionType string, userID, categoryID int64,
) (*domain.Transaction, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	transaction := domain.Transaction{
		ID:          m.nextID,
		Amount:      amount,
		Date:        date,
		Description: description,
		Type:        transactionType,
		UserID:      userID,
		CategoryID:  categoryID,
	}
	m.nextID++
	m.transactions = append(m.transactions, transaction)
	return &transaction, nil
}

func (m *MockTransactionService) GetTransaction(transactionID int64) (*domain.Transaction, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, transaction := range m.transactions {
		if transaction.ID == transactionID {
			t := transaction
			return &t, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) ListTransactions(
	userID *int64, transactionType, orderBy, order string,
) ([]domain.Transaction, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := []domain.Transaction{}
	for _, transaction := range m.transactions {
		if userID != nil && transaction.UserID != *userID {
			continue
		}
		if transactionType != "" && !strings.EqualFold(transaction.Type, transactionType) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

func (m *MockTransactionService) UpdateTransaction(
	transactionID int64, amount *float64, date *time.Time, description, transactionType *string, categoryID *int64,
) (*domain.Transaction, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			if amount != nil {
				m.transactions[i].Amount = *amount
			}
			if date != nil {
				m.transactions[i].Date = *date
			}
			if description != nil {
				m.transactions[i].Description = *description
			}
			if transactionType != nil {
				m.transactions[i].Type = *transactionType
			}
			if categoryID != nil {
				m.transactions[i].CategoryID = *categoryID
			}
			t := m.transactions[i]
			return &t, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) DeleteTransaction(transactionID int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i := range m.transactions {
		if m.transactions[i].ID == transactionID {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionService) Balance(userID int64) (float64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var balance float64
	for _, transaction := range m.transactions {
		if transaction.UserID != userID {
			continue
		}
		switch {
		case domain.IsIncome(transaction.Type):
			balance += transaction.Amount
		case domain.IsExpense(transaction.Type):
			balance -= transaction.Amount
		}
	}
	return balance, nil
}

func (m *MockTransactionService) Summary(userID int64) (*application.Summary, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	summary := application.Summary{UserID: userID}
	for _, transaction := range m.transactions {
		if transaction.UserID != userID {
			continue
		}
		switch {
		case domain.IsIncome(transaction.Type):
			summary.Income += transaction.Amount
		case domain.IsExpense(transaction.Type):
			summary.Expense += transaction.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return &summary, nil
}
