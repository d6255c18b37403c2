package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-finance/backend/internal/domain/entity"
	domainerror "github.com/household-finance/backend/internal/domain/error"
)

func TestUserRepository_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new user", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		user := entity.NewUser("Gabriel", "#1976d2")
		require.NoError(t, repo.Upsert(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Gabriel", found.Name)
		assert.True(t, found.Active)
	})

	t.Run("updates the color of an existing name and keeps the id", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))

		first := entity.NewUser("Klara", "#a30d41")
		require.NoError(t, repo.Upsert(ctx, first))

		second := entity.NewUser("Klara", "#00695c")
		require.NoError(t, repo.Upsert(ctx, second))

		assert.Equal(t, first.ID, second.ID)

		users, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "#00695c", users[0].Color)
	})
}

func TestUserRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	for _, name := range []string{"Klara", "Gabriel", "Ana"} {
		require.NoError(t, repo.Upsert(ctx, entity.NewUser(name, "")))
	}

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	require.NoError(t, repo.Deactivate(ctx, users[0].ID)) // Ana

	users, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Gabriel", users[0].Name)
	assert.Equal(t, "Klara", users[1].Name)
	assert.Equal(t, "Ana", users[2].Name)
	assert.False(t, users[2].Active)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerror.ErrUserNotFound)
}

func TestUserRepository_Deactivate_UnknownIDIsNoOp(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	assert.NoError(t, repo.Deactivate(context.Background(), uuid.New()))
}
