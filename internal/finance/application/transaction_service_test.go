package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fintrack/internal/finance/domain"
	"fintrack/internal/finance/errors"
	"fintrack/internal/finance/infrastructure"
)

type transactionFixture struct {
	service         *TransactionService
	user            *domain.User
	incomeCategory  *domain.Category
	expenseCategory *domain.Category
}

func newTransactionFixture(t *testing.T, monthlyLimit float64) *transactionFixture {
	t.Helper()

	userRepo := &infrastructure.MockUserRepository{}
	categoryRepo := &infrastructure.MockCategoryRepository{}
	transactionRepo := &infrastructure.MockTransactionRepository{}

	user := &domain.User{Name: "Alice", Email: "alice@example.com"}
	assert.NoError(t, userRepo.Save(user))

	incomeCategory := &domain.Category{Name: "Salary", Type: domain.TypeIncome}
	assert.NoError(t, categoryRepo.Save(incomeCategory))
	expenseCategory := &domain.Category{Name: "Groceries", Type: domain.TypeExpense}
	assert.NoError(t, categoryRepo.Save(expenseCategory))

	return &transactionFixture{
		service:         NewTransactionService(transactionRepo, userRepo, categoryRepo, monthlyLimit, newTestLogger()),
		user:            user,
		incomeCategory:  incomeCategory,
		expenseCategory: expenseCategory,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTransaction(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	transaction, err := f.service.CreateTransaction(
		100.0, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)
	assert.NotZero(t, transaction.ID)
	assert.Equal(t, domain.TypeIncome, transaction.Type)
}

func TestCreateTransaction_NonPositiveAmount(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		0, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.True(t, errors.IsValidationError(err))

	_, err = f.service.CreateTransaction(
		-5, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		10, date(2025, time.June, 1), "", "Transfer", f.user.ID, f.incomeCategory.ID)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTransaction_TypeCaseInsensitive(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	transaction, err := f.service.CreateTransaction(
		10, date(2025, time.June, 1), "", "income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.TypeIncome, transaction.Type)
}

func TestCreateTransaction_UserNotFound(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		10, date(2025, time.June, 1), "", "Income", 9999, f.incomeCategory.ID)
	assert.True(t, errors.IsNotFoundError(err))
	assert.EqualError(t, err, "user not found")
}

func TestCreateTransaction_CategoryNotFound(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		10, date(2025, time.June, 1), "", "Income", f.user.ID, 9999)
	assert.True(t, errors.IsNotFoundError(err))
	assert.EqualError(t, err, "category not found")
}

func TestCreateTransaction_TypeMismatch(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	// Income transaction against an Expense category, regardless of a valid
	// amount and date.
	_, err := f.service.CreateTransaction(
		10, date(2025, time.June, 1), "", "Income", f.user.ID, f.expenseCategory.ID)
	assert.True(t, errors.IsValidationError(err))
	assert.EqualError(t, err, "transaction type must match category type")
}

func TestCreateTransaction_MonthlyLimit(t *testing.T) {
	f := newTransactionFixture(t, 50.0)

	_, err := f.service.CreateTransaction(
		40.0, date(2025, time.May, 5), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)

	// 40 + 20 > 50 within May 2025.
	_, err = f.service.CreateTransaction(
		20.0, date(2025, time.May, 20), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "monthly limit of 50.00 exceeded")
	assert.Contains(t, err.Error(), "current total 40.00")
	assert.Contains(t, err.Error(), "attempted 20.00")

	// 40 + 10 fits exactly.
	_, err = f.service.CreateTransaction(
		10.0, date(2025, time.May, 25), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)
}

func TestCreateTransaction_MonthlyLimitIgnoresOtherMonths(t *testing.T) {
	f := newTransactionFixture(t, 50.0)

	_, err := f.service.CreateTransaction(
		40.0, date(2025, time.May, 5), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)

	// June is a fresh month.
	_, err = f.service.CreateTransaction(
		45.0, date(2025, time.June, 5), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)
}

func TestCreateTransaction_MonthlyLimitIgnoresIncome(t *testing.T) {
	f := newTransactionFixture(t, 50.0)

	_, err := f.service.CreateTransaction(
		1000.0, date(2025, time.May, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)

	_, err = f.service.CreateTransaction(
		45.0, date(2025, time.May, 5), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	amount := 10.0
	_, err := f.service.UpdateTransaction(9999, &amount, nil, nil, nil, nil)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTransaction_PartialFields(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	created, err := f.service.CreateTransaction(
		100.0, date(2025, time.June, 1), "salary", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)

	amount := 150.0
	updated, err := f.service.UpdateTransaction(created.ID, &amount, nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 150.0, updated.Amount)
	assert.Equal(t, "salary", updated.Description)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdateTransaction_InvalidAmount(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	created, err := f.service.CreateTransaction(
		100.0, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)

	amount := -1.0
	_, err = f.service.UpdateTransaction(created.ID, &amount, nil, nil, nil, nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTransaction_CategoryTypeRecheck(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	created, err := f.service.CreateTransaction(
		100.0, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)

	// Moving the Income transaction onto an Expense category must fail.
	_, err = f.service.UpdateTransaction(created.ID, nil, nil, nil, nil, &f.expenseCategory.ID)
	assert.True(t, errors.IsValidationError(err))

	// Changing type and category together is consistent.
	newType := "Expense"
	updated, err := f.service.UpdateTransaction(created.ID, nil, nil, nil, &newType, &f.expenseCategory.ID)
	assert.NoError(t, err)
	assert.Equal(t, domain.TypeExpense, updated.Type)
	assert.Equal(t, f.expenseCategory.ID, updated.CategoryID)
}

func TestUpdateTransaction_NoMonthlyLimitRecheck(t *testing.T) {
	f := newTransactionFixture(t, 50.0)

	created, err := f.service.CreateTransaction(
		40.0, date(2025, time.May, 5), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)

	// Raising the amount past the cap succeeds: the limit is enforced only
	// at creation time.
	amount := 500.0
	updated, err := f.service.UpdateTransaction(created.ID, &amount, nil, nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 500.0, updated.Amount)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	err := f.service.DeleteTransaction(9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListTransactions_SortByAmountDesc(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	for _, amount := range []float64{30, 10, 20} {
		_, err := f.service.CreateTransaction(
			amount, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
		assert.NoError(t, err)
	}

	transactions, err := f.service.ListTransactions(&f.user.ID, "", "amount", "desc")
	assert.NoError(t, err)
	amounts := make([]float64, len(transactions))
	for i, transaction := range transactions {
		amounts[i] = transaction.Amount
	}
	assert.Equal(t, []float64{30, 20, 10}, amounts)
}

func TestListTransactions_InvalidSortField(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.ListTransactions(nil, "", "nonexistent_field", "asc")
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "nonexistent_field")
}

func TestListTransactions_FilterByTypeCaseInsensitive(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		100, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)
	_, err = f.service.CreateTransaction(
		40, date(2025, time.June, 2), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)

	transactions, err := f.service.ListTransactions(nil, "EXPENSE", "date", "asc")
	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, domain.TypeExpense, transactions[0].Type)
}

func TestBalance(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		100, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)
	_, err = f.service.CreateTransaction(
		30, date(2025, time.June, 2), "", "Expense", f.user.ID, f.expenseCategory.ID)
	assert.NoError(t, err)

	balance, err := f.service.Balance(f.user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, balance)

	// Idempotent absent mutation.
	again, err := f.service.Balance(f.user.ID)
	assert.NoError(t, err)
	assert.Equal(t, balance, again)
}

func TestSummary(t *testing.T) {
	f := newTransactionFixture(t, 2000)

	_, err := f.service.CreateTransaction(
		100.0, date(2025, time.June, 1), "", "Income", f.user.ID, f.incomeCategory.ID)
	assert.NoError(t, err)

	summary, err := f.service.Summary(f.user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.Income)
	assert.Equal(t, 0.0, summary.Expense)
	assert.Equal(t, 100.0, summary.Balance)
}
