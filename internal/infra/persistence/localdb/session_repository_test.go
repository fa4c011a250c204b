package localdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbuilder/internal/domain/entity"
	"fitbuilder/internal/domain/repository"
	"fitbuilder/internal/infra/persistence/memory"
)

func TestSessionRepository_CurrentWithoutSession(t *testing.T) {
	repo := NewSessionRepository(memory.New())

	_, err := repo.Current(context.Background())
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionRepository_SetAndCurrent(t *testing.T) {
	repo := NewSessionRepository(memory.New())
	ctx := context.Background()

	account := entity.NewAccount("a@x.com")
	require.NoError(t, repo.Set(ctx, account))

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, account, current)
}

func TestSessionRepository_SetReplacesPrevious(t *testing.T) {
	repo := NewSessionRepository(memory.New())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, entity.NewAccount("first@x.com")))
	require.NoError(t, repo.Set(ctx, entity.NewAccount("second@x.com")))

	current, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second@x.com", current.Email)
}

func TestSessionRepository_Clear(t *testing.T) {
	repo := NewSessionRepository(memory.New())
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, entity.NewAccount("a@x.com")))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Clearing an absent session is a no-op.
	require.NoError(t, repo.Clear(ctx))
}
