package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fintrack/internal/finance/domain"
	"fintrack/internal/finance/errors"
	"fintrack/internal/finance/infrastructure"
)

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	user, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestCreateUser_BlankName(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.CreateUser("   ", "alice@example.com")
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.CreateUser("Alice", "not-an-email")
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)

	_, err = service.CreateUser("Another Alice", "alice@example.com")
	assert.True(t, errors.IsValidationError(err))
}

func TestGetUser_NotFound(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.GetUser(9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateUser_PartialFields(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	created, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)

	updated, err := service.UpdateUser(created.ID, strPtr("Alicia"), nil)
	assert.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateUser_KeepOwnEmail(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	created, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)

	// Re-submitting the user's own email is not a duplicate.
	updated, err := service.UpdateUser(created.ID, nil, strPtr("alice@example.com"))
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateUser_EmailTakenByAnotherUser(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)
	bob, err := service.CreateUser("Bob", "bob@example.com")
	assert.NoError(t, err)

	_, err = service.UpdateUser(bob.ID, nil, strPtr("alice@example.com"))
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	_, err := service.UpdateUser(9999, strPtr("Ghost"), nil)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteUser(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	created, err := service.CreateUser("Alice", "alice@example.com")
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteUser(created.ID))

	_, err = service.GetUser(created.ID)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	err := service.DeleteUser(9999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListUsers_EmptyIsNotNil(t *testing.T) {
	repo := &infrastructure.MockUserRepository{}
	service := NewUserService(repo, newTestLogger())

	users, err := service.ListUsers()
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{}, users)
}
