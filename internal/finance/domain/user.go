package domain

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserRepository interface {
	Save(user *User) error
	FindByID(userID int64) (*User, error)
	// FindByEmail matches the stored address exactly (case-sensitive).
	FindByEmail(email string) (*User, error)
	FindAll() ([]User, error)
	Update(user User) error
	Delete(userID int64) error
}
