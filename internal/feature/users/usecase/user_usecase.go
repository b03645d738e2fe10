package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"user_service/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and sets its ID.
	// It returns ErrEmailAlreadyExists if the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByID returns ErrUserNotFound if no row matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]entity.User, error)

	// SearchByName returns users whose name contains the given substring, ordered by ID.
	SearchByName(ctx context.Context, name string) ([]entity.User, error)

	// Update overwrites name and email of an existing user.
	// It returns ErrUserNotFound if no row was affected and ErrEmailAlreadyExists on a uniqueness violation.
	Update(ctx context.Context, id uint, name, email string) error

	// Delete removes the user. It returns ErrUserNotFound if no row was affected.
	Delete(ctx context.Context, id uint) error
}

// UserUsecase implements user management on top of a UserRepository.
type UserUsecase struct {
	users    UserRepository
	emails   *EmailPolicy
	hashCost int
}

// NewUserUsecase creates a UserUsecase. A nil policy uses DefaultAllowedDomains.
func NewUserUsecase(users UserRepository, emails *EmailPolicy) *UserUsecase {
	if emails == nil {
		emails = NewEmailPolicy(nil)
	}
	return &UserUsecase{
		users:    users,
		emails:   emails,
		hashCost: bcrypt.DefaultCost,
	}
}

// CreateUser validates the input, hashes the password and stores a new user.
// The returned user carries the assigned ID and the hash, never the plaintext.
func (u *UserUsecase) CreateUser(ctx context.Context, name, email, password string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrMissingFields
	}
	if err := u.emails.Validate(email); err != nil {
		return nil, err
	}

	hashed, err := HashPassword(password, u.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser returns a single user by ID.
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ListUsers returns every user ordered by ID.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	return u.users.List(ctx)
}

// SearchUsers returns users whose name contains name. A blank query is rejected.
func (u *UserUsecase) SearchUsers(ctx context.Context, name string) ([]entity.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingFields
	}
	return u.users.SearchByName(ctx, name)
}

// UpdateUser replaces the name and email of a user.
// The email is normalized but not checked against the domain allow-list.
func (u *UserUsecase) UpdateUser(ctx context.Context, id uint, name, email string) error {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" {
		return ErrMissingFields
	}
	return u.users.Update(ctx, id, name, email)
}

// DeleteUser removes a user by ID.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}
