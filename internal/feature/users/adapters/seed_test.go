package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

func TestResetAndSeed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Pre-existing rows are wiped.
	require.NoError(t, db.Create(&entity.User{Name: "Old", Email: "old@gmail.com", Password: "p"}).Error)

	inserted, err := ResetAndSeed(ctx, db, DefaultSeeds, bcrypt.MinCost)

	require.NoError(t, err)
	assert.Equal(t, 3, inserted, "duplicate seeds should be skipped")

	repo := NewUserRepository(db)
	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, uint(1), users[0].ID, "IDs should restart after reset")
	assert.Equal(t, "John Doe", users[0].Name)

	john, err := repo.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", john.Password, "password stored in plaintext")
	assert.NoError(t, usecase.ComparePassword(john.Password, "password123"))

	_, err = repo.FindByEmail(ctx, "old@gmail.com")
	assert.Error(t, err, "old row survived the reset")
}

func TestResetAndSeed_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := ResetAndSeed(ctx, db, DefaultSeeds, bcrypt.MinCost)
	require.NoError(t, err)
	inserted, err := ResetAndSeed(ctx, db, DefaultSeeds, bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, 3, inserted)
}
