package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	query := `INSERT INTO categories (name, type) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRow(query, category.Name, category.Type).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("could not create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByID(categoryID int64) (*domain.Category, error) {
	query := `SELECT id, name, type FROM categories WHERE id = $1`

	var category domain.Category
	err := r.db.QueryRow(query, categoryID).Scan(&category.ID, &category.Name, &category.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	return r.queryCategories(`SELECT id, name, type FROM categories`)
}

func (r *CategoryRepository) FindByType(categoryType string) ([]domain.Category, error) {
	return r.queryCategories(`SELECT id, name, type FROM categories WHERE LOWER(type) = LOWER($1)`, categoryType)
}

func (r *CategoryRepository) queryCategories(query string, args ...interface{}) ([]domain.Category, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(category domain.Category) error {
	query := `UPDATE categories SET name = $1, type = $2 WHERE id = $3`
	_, err := r.db.Exec(query, category.Name, category.Type, category.ID)
	if err != nil {
		return fmt.Errorf("could not update category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) Delete(categoryID int64) error {
	_, err := r.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		if isPgErrorCode(err, pgForeignKeyViolation) {
			return financeErrors.NewValidationError("category still has transactions and cannot be deleted")
		}
		return fmt.Errorf("could not delete category: %w", err)
	}
	return nil
}
