package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // TypeIncome or TypeExpense
}

type CategoryRepository interface {
	Save(category *Category) error
	FindByID(categoryID int64) (*Category, error)
	FindAll() ([]Category, error)
	FindByType(categoryType string) ([]Category, error)
	Update(category Category) error
	Delete(categoryID int64) error
}
