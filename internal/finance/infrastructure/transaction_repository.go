package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (amount, date, description, type, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(
		query,
		transaction.Amount, transaction.Date, transaction.Description,
		transaction.Type, transaction.UserID, transaction.CategoryID,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindByID(transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT id, amount, date, description, type, user_id, category_id
		FROM transactions
		WHERE id = $1`

	var transaction domain.Transaction
	err := r.db.QueryRow(query, transactionID).Scan(
		&transaction.ID, &transaction.Amount, &transaction.Date, &transaction.Description,
		&transaction.Type, &transaction.UserID, &transaction.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindAll() ([]domain.Transaction, error) {
	return r.queryTransactions(`
		SELECT id, amount, date, description, type, user_id, category_id
		FROM transactions`)
}

func (r *TransactionRepository) FindByUser(userID int64) ([]domain.Transaction, error) {
	return r.queryTransactions(`
		SELECT id, amount, date, description, type, user_id, category_id
		FROM transactions
		WHERE user_id = $1`, userID)
}

func (r *TransactionRepository) queryTransactions(query string, args ...interface{}) ([]domain.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(
			&transaction.ID, &transaction.Amount, &transaction.Date, &transaction.Description,
			&transaction.Type, &transaction.UserID, &transaction.CategoryID,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) SumExpensesForMonth(userID int64, date time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1
		  AND LOWER(type) = 'expense'
		  AND date >= date_trunc('month', $2::date)
		  AND date < date_trunc('month', $2::date) + INTERVAL '1 month'`

	var total float64
	if err := r.db.QueryRow(query, userID, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("could not sum monthly expenses: %w", err)
	}
	return total, nil
}

func (r *TransactionRepository) Update(transaction domain.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, date = $2, description = $3, type = $4, category_id = $5
		WHERE id = $6`
	_, err := r.db.Exec(
		query,
		transaction.Amount, transaction.Date, transaction.Description,
		transaction.Type, transaction.CategoryID, transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("could not update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Delete(transactionID int64) error {
	_, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}
	return nil
}
