package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// Seed is a sample account inserted by ResetAndSeed.
type Seed struct {
	Name     string
	Email    string
	Password string
}

// DefaultSeeds are the sample accounts of a fresh database.
// The duplicates are intentional and are skipped on insert.
var DefaultSeeds = []Seed{
	{Name: "John Doe", Email: "john@example.com", Password: "password123"},
	{Name: "Jane Smith", Email: "jane@example.com", Password: "secret456"},
	{Name: "Bob Johnson", Email: "bob@example.com", Password: "qwerty789"},
	{Name: "John Doe", Email: "john@example.com", Password: "password123"},
	{Name: "Jane Smith", Email: "jane@example.com", Password: "secret456"},
	{Name: "Bob Johnson", Email: "bob@example.com", Password: "qwerty789"},
}

// Migrate creates the users table and its unique email index if missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		return fmt.Errorf("failed to migrate users: %w", err)
	}
	return nil
}

// ResetAndSeed drops and recreates the users table, then inserts the seeds with bcrypt hashes.
// Seeds bypass the email allow-list. Seeds whose email already exists are skipped.
// It returns the number of inserted rows.
func ResetAndSeed(ctx context.Context, db *gorm.DB, seeds []Seed, hashCost int) (int, error) {
	if err := db.WithContext(ctx).Migrator().DropTable(&entity.User{}); err != nil {
		return 0, fmt.Errorf("failed to drop users: %w", err)
	}
	if err := Migrate(db.WithContext(ctx)); err != nil {
		return 0, err
	}

	repo := NewUserRepository(db)
	inserted := 0
	for _, s := range seeds {
		hashed, err := usecase.HashPassword(s.Password, hashCost)
		if err != nil {
			return inserted, fmt.Errorf("failed to hash password: %w", err)
		}
		u := &entity.User{Name: s.Name, Email: s.Email, Password: hashed}
		if err := repo.Create(ctx, u); err != nil {
			if errors.Is(err, usecase.ErrEmailAlreadyExists) {
				slog.Info("skipped duplicate email", "email", s.Email)
				continue
			}
			return inserted, fmt.Errorf("failed to insert seed %q: %w", s.Email, err)
		}
		inserted++
	}
	return inserted, nil
}
