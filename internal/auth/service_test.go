package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// --------------------------------------------------
// Mock UserRepository
// --------------------------------------------------

type MockUserRepository struct {
	users map[string]*User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*User)}
}

func (r *MockUserRepository) Save(user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *MockUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *MockUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, RoleCrew)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "pirate@example.com", "secret", "PIRATE")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestRegisterDefaultsToCrewRole(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewService(repo)

	user, err := service.Register("Deck Hand", "hand@example.com", "secret", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Role != RoleCrew {
		t.Errorf("expected role %s, got %s", RoleCrew, user.Role)
	}
}

func TestLoginWithWrongPassword(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewService(repo)

	if _, err := service.Register("Test User", "login@example.com", "right-password", RoleChef); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.Login("login@example.com", "wrong-password")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
