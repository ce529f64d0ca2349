package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Save(user *domain.User) error {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, user.Name, user.Email).Scan(&user.ID)
	if err != nil {
		// Concurrent duplicate creation ends up here instead of the service
		// pre-check; callers must not be able to tell the two apart.
		if isPgErrorCode(err, pgUniqueViolation) {
			return financeErrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(userID int64) (*domain.User, error) {
	query := `SELECT id, name, email FROM users WHERE id = $1`

	var user domain.User
	err := r.db.QueryRow(query, userID).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := `SELECT id, name, email FROM users WHERE email = $1`

	var user domain.User
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Name, &user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll() ([]domain.User, error) {
	rows, err := r.db.Query(`SELECT id, name, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(user domain.User) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`
	_, err := r.db.Exec(query, user.Name, user.Email, user.ID)
	if err != nil {
		if isPgErrorCode(err, pgUniqueViolation) {
			return financeErrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("could not update user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		if isPgErrorCode(err, pgForeignKeyViolation) {
			return financeErrors.NewValidationError("user still has transactions and cannot be deleted")
		}
		return fmt.Errorf("could not delete user: %w", err)
	}
	return nil
}
