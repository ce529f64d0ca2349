package application

import (
	"strings"

	"github.com/badoux/checkmail"

	"fintrack/internal/finance/domain"
	financeErrors "fintrack/internal/finance/errors"
	"fintrack/internal/log"
)

type UserService struct {
	repo   domain.UserRepository
	logger *log.Logger
}

func NewUserService(repo domain.UserRepository, logger *log.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.WithComponent("user_service")}
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return financeErrors.NewValidationError("email address is not valid")
	}
	return nil
}

func (s *UserService) CreateUser(name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, financeErrors.NewValidationError("name is required")
	}
	email = strings.TrimSpace(email)
	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, financeErrors.ErrEmailAlreadyExists
	} else if !financeErrors.IsNotFoundError(err) {
		return nil, err
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

func (s *UserService) GetUser(userID int64) (*domain.User, error) {
	return s.repo.FindByID(userID)
}

func (s *UserService) ListUsers() ([]domain.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateUser applies only the supplied fields. A nil pointer leaves the
// current value untouched.
func (s *UserService) UpdateUser(userID int64, name, email *string) (*domain.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, financeErrors.NewValidationError("name must not be empty")
		}
		user.Name = trimmed
	}

	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if err := validateEmailAddress(trimmed); err != nil {
			return nil, err
		}
		existing, err := s.repo.FindByEmail(trimmed)
		if err == nil && existing.ID != userID {
			return nil, financeErrors.ErrEmailAlreadyExists
		} else if err != nil && !financeErrors.IsNotFoundError(err) {
			return nil, err
		}
		user.Email = trimmed
	}

	if err := s.repo.Update(*user); err != nil {
		return nil, err
	}
	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

func (s *UserService) DeleteUser(userID int64) error {
	if _, err := s.repo.FindByID(userID); err != nil {
		return err
	}
	if err := s.repo.Delete(userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
