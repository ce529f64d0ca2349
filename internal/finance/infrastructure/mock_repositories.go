package infrastructure

import (
	"time"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

// In-memory repository doubles for unit tests. They reproduce the store
// contract, including the unique-email backstop.

type MockUserRepository struct {
	Users  []domain.User
	nextID int64
}

func (m *MockUserRepository) Save(user *domain.User) error {
	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return financeErrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	m.Users = append(m.Users, *user)
	return nil
}

func (m *MockUserRepository) FindByID(userID int64) (*domain.User, error) {
	for _, user := range m.Users {
		if user.ID == userID {
			u := user
			return &u, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.Users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) FindAll() ([]domain.User, error) {
	return append([]domain.User(nil), m.Users...), nil
}

func (m *MockUserRepository) Update(user domain.User) error {
	for i, existing := range m.Users {
		if existing.ID == user.ID {
			m.Users[i] = user
			return nil
		}
	}
	return financeErrors.ErrUserNotFound
}

func (m *MockUserRepository) Delete(userID int64) error {
	for i, existing := range m.Users {
		if existing.ID == userID {
			m.Users = append(m.Users[:i], m.Users[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrUserNotFound
}

type MockCategoryRepository struct {
	Categories []domain.Category
	nextID     int64
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID {
			c := category
			return &c, nil
		}
	}
	return nil, financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	return append([]domain.Category(nil), m.Categories...), nil
}

func (m *MockCategoryRepository) FindByType(categoryType string) ([]domain.Category, error) {
	var filtered []domain.Category
	for _, category := range m.Categories {
		if normalized, ok := domain.NormalizeType(categoryType); ok && category.Type == normalized {
			filtered = append(filtered, category)
		}
	}
	return filtered, nil
}

func (m *MockCategoryRepository) Update(category domain.Category) error {
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			m.Categories[i] = category
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(categoryID int64) error {
	for i, existing := range m.Categories {
		if existing.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrCategoryNotFound
}

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	nextID       int64
}

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(transactionID int64) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			t := transaction
			return &t, nil
		}
	}
	return nil, financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) FindAll() ([]domain.Transaction, error) {
	return append([]domain.Transaction(nil), m.Transactions...), nil
}

func (m *MockTransactionRepository) FindByUser(userID int64) ([]domain.Transaction, error) {
	var filtered []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

func (m *MockTransactionRepository) SumExpensesForMonth(userID int64, date time.Time) (float64, error) {
	var total float64
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID &&
			domain.IsExpense(transaction.Type) &&
			transaction.Date.Year() == date.Year() &&
			transaction.Date.Month() == date.Month() {
			total += transaction.Amount
		}
	}
	return total, nil
}

func (m *MockTransactionRepository) Update(transaction domain.Transaction) error {
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID {
			m.Transactions[i] = transaction
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}

func (m *MockTransactionRepository) Delete(transactionID int64) error {
	for i, existing := range m.Transactions {
		if existing.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return financeErrors.ErrTransactionNotFound
}
