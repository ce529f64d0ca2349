package application

import (
	"sort"
	"strings"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
	"fintrack/internal/log"
)

type CategoryService struct {
	repo   domain.CategoryRepository
	logger *log.Logger
}

func NewCategoryService(repo domain.CategoryRepository, logger *log.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger.WithComponent("category_service")}
}

func (s *CategoryService) CreateCategory(name, categoryType string) (*domain.Category, error) {
	normalized, ok := domain.NormalizeType(categoryType)
	if !ok {
		return nil, financeErrors.NewValidationError("category type must be 'Income' or 'Expense'")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, financeErrors.NewValidationError("category name is required")
	}

	category := &domain.Category{Name: name, Type: normalized}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	s.logger.Info("category created", "category_id", category.ID, "type", category.Type)
	return category, nil
}

// ListCategories filters by type when one is given and sorts by name,
// case-insensitively, ascending unless order is "desc".
func (s *CategoryService) ListCategories(categoryType, order string) ([]domain.Category, error) {
	var categories []domain.Category
	var err error

	if categoryType == "" {
		categories, err = s.repo.FindAll()
	} else {
		if _, ok := domain.NormalizeType(categoryType); !ok {
			return nil, financeErrors.NewValidationError("category type must be 'Income' or 'Expense'")
		}
		categories, err = s.repo.FindByType(categoryType)
	}
	if err != nil {
		return nil, err
	}

	reverse := strings.EqualFold(order, "desc")
	sort.SliceStable(categories, func(i, j int) bool {
		if reverse {
			i, j = j, i
		}
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(categoryID int64) (*domain.Category, error) {
	return s.repo.FindByID(categoryID)
}

func (s *CategoryService) UpdateCategory(categoryID int64, name, categoryType *string) (*domain.Category, error) {
	category, err := s.repo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, financeErrors.NewValidationError("category name must not be empty")
		}
		category.Name = trimmed
	}

	if categoryType != nil {
		normalized, ok := domain.NormalizeType(*categoryType)
		if !ok {
			return nil, financeErrors.NewValidationError("category type must be 'Income' or 'Expense'")
		}
		category.Type = normalized
	}

	if err := s.repo.Update(*category); err != nil {
		return nil, err
	}
	s.logger.Info("category updated", "category_id", category.ID)
	return category, nil
}

func (s *CategoryService) DeleteCategory(categoryID int64) error {
	if _, err := s.repo.FindByID(categoryID); err != nil {
		return err
	}
	if err := s.repo.Delete(categoryID); err != nil {
		return err
	}
	s.logger.Info("category deleted", "category_id", categoryID)
	return nil
}
