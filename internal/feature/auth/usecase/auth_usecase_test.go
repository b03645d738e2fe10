package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user_service/internal/feature/users/domain/entity"
	usersusecase "user_service/internal/feature/users/usecase"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// lastEmail records the email passed to FindByEmail.
	lastEmail string
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	m.lastEmail = email
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: return user not found error
	return nil, usersusecase.ErrUserNotFound
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, err := usersusecase.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	testUser := &entity.User{
		ID:       1,
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: hashedPassword,
	}
	findJohn := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, usersusecase.ErrUserNotFound
	}

	t.Run("successful login", func(t *testing.T) {
		repo := &mockUserRepository{FindByEmailFunc: findJohn}
		uc := NewAuthUsecase(repo)

		id, err := uc.Login(context.Background(), "john@example.com", password)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), id)
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		repo := &mockUserRepository{FindByEmailFunc: findJohn}
		uc := NewAuthUsecase(repo)

		id, err := uc.Login(context.Background(), "  John@Example.COM ", password)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), id)
		assert.Equal(t, "john@example.com", repo.lastEmail)
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		repo := &mockUserRepository{FindByEmailFunc: findJohn}
		uc := NewAuthUsecase(repo)

		_, wrongPassword := uc.Login(context.Background(), "john@example.com", "wrong")
		_, unknownEmail := uc.Login(context.Background(), "nobody@example.com", password)

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("password longer than 72 bytes is verified in full", func(t *testing.T) {
		long := strings.Repeat("p", 100)
		longHash, err := usersusecase.HashPassword(long, bcrypt.MinCost)
		require.NoError(t, err)
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 7, Email: email, Password: longHash}, nil
			},
		}
		uc := NewAuthUsecase(repo)

		id, err := uc.Login(context.Background(), "long@gmail.com", long)
		require.NoError(t, err)
		assert.Equal(t, uint(7), id)

		_, err = uc.Login(context.Background(), "long@gmail.com", long[:72])
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank credentials are rejected without lookup", func(t *testing.T) {
		repo := &mockUserRepository{FindByEmailFunc: findJohn}
		uc := NewAuthUsecase(repo)

		_, err := uc.Login(context.Background(), "   ", password)
		assert.ErrorIs(t, err, ErrMissingCredentials)

		_, err = uc.Login(context.Background(), "john@example.com", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)

		assert.Empty(t, repo.lastEmail)
	})

	t.Run("repository failure is propagated", func(t *testing.T) {
		dbErr := errors.New("database is locked")
		repo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, dbErr
			},
		}
		uc := NewAuthUsecase(repo)

		_, err := uc.Login(context.Background(), "john@example.com", password)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
