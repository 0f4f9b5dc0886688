package repository

import (
	"context"
	"testing"

	"go_5_course_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormUserRepository()

	u := &model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, db, u))

	dup := &model.User{Name: "Alice2", Email: "alice@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)

	found, err := repo.FindByEmail(ctx, db, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindByEmail(ctx, db, "nobody@example.com")
	assert.ErrorIs(t, err, model.ErrNotFound)

	exists, err := repo.Exists(ctx, db, u.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
