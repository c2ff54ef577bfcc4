package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/roommate-finder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserWriteRepository_Create(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "hash", models.UserProfile{
		Email:    "alice@example.com",
		FullName: "Alice",
		Age:      25,
		Gender:   "female",
		Bio:      strPtr("hi"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, user.ProfileURL)
	assert.Equal(t, "hi", *user.Bio)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := repo.Create(ctx, "other", models.UserProfile{
			Email: "alice@example.com", FullName: "Alice Two", Age: 30, Gender: "female",
		})
		assert.ErrorIs(t, err, ErrDuplicate)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE email = $1", "alice@example.com"))
		assert.Equal(t, 1, count)
	})
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	charlie, err := writeRepo.Create(ctx, "h1", models.UserProfile{Email: "charlie@example.com", FullName: "Charlie", Age: 30, Gender: "male"})
	require.NoError(t, err)
	_, err = writeRepo.Create(ctx, "h2", models.UserProfile{Email: "dave@example.com", FullName: "Dave", Age: 40, Gender: "male"})
	require.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, charlie.UserID)
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Charlie", user.FullName)
	})

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "dave@example.com")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Dave", user.FullName)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ListLimit", func(t *testing.T) {
		users, err := readRepo.List(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, users, 1)

		users, err = readRepo.List(ctx, 100)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserWriteRepository_UpdateDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Create(ctx, "hash", models.UserProfile{
		Email: "eve@example.com", FullName: "Eve", Age: 22, Gender: "female", Bio: strPtr("old bio"),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, "hash", models.UserProfile{Email: "frank@example.com", FullName: "Frank", Age: 50, Gender: "male"})
	require.NoError(t, err)

	t.Run("FullReplace", func(t *testing.T) {
		updated, err := repo.Update(ctx, user.UserID, models.UserProfile{
			Email: "eve@example.com", FullName: "Eve Adams", Age: 23, Gender: "female",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Eve Adams", updated.FullName)
		assert.Nil(t, updated.Bio, "omitted fields are replaced with NULL")
		assert.Equal(t, "hash", updated.PasswordHash)
	})

	t.Run("EmailCollision", func(t *testing.T) {
		_, err := repo.Update(ctx, user.UserID, models.UserProfile{
			Email: "frank@example.com", FullName: "Eve", Age: 23, Gender: "female",
		})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		updated, err := repo.Update(ctx, uuid.New(), models.UserProfile{Email: "x@example.com", FullName: "X", Age: 30, Gender: "x"})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, user.UserID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, user.UserID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
