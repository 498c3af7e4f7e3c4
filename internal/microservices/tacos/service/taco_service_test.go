package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taco-cloud/internal/domain"
	"taco-cloud/internal/repository/repotest"
)

func seed(t *testing.T, n int) (*TacoService, *repotest.Store) {
	t.Helper()
	store := repotest.New()
	tacos := store.Repository().TacoRepo
	for i := 0; i < n; i++ {
		_, err := tacos.Save(context.Background(), domain.Taco{Name: "Taco", Ingredients: []string{"FLTO"}})
		require.NoError(t, err)
	}
	return NewTacoService(tacos), store
}

func TestRecentClampsLimit(t *testing.T) {
	svc, _ := seed(t, 60)
	ctx := context.Background()

	got, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultRecentLimit)
	assert.Greater(t, got[0].ID, got[1].ID, "newest first")

	got, err = svc.Recent(ctx, 500)
	require.NoError(t, err)
	assert.Len(t, got, MaxRecentLimit)

	got, err = svc.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGet(t *testing.T) {
	svc, store := seed(t, 1)
	id := store.Tacos[0].ID

	got, ok, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Taco", got.Name)
	assert.Equal(t, []string{"FLTO"}, got.Ingredients)
	assert.NotEmpty(t, got.CreatedAt)

	_, ok, err = svc.Get(context.Background(), id+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetStoreError(t *testing.T) {
	svc, store := seed(t, 0)
	boom := errors.New("db down")
	store.SetErr("Tacos.FindByID", boom)

	_, _, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
