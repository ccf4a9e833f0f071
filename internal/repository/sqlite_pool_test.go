package repository

import (
	"context"
	"testing"

	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRepo_SeededDefaults(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePoolRepo(db)
	ctx := context.Background()

	pools, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, "normal", pools[0].Name)
	assert.Equal(t, "hastalik", pools[1].Name)

	normal, err := repo.GetByName(ctx, "normal")
	require.NoError(t, err)
	assert.True(t, normal.IsActive)
}

func TestPoolRepo_CreateAndList_ActiveOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePoolRepo(db)
	ctx := context.Background()

	inactive := testutil.NewTestPool("arsiv", testutil.WithPoolActive(false))
	require.NoError(t, repo.Create(ctx, inactive))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestPoolRepo_GetByName_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePoolRepo(db)
	ctx := context.Background()

	_, err := repo.GetByName(ctx, "yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPoolRepo_Stats(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePoolRepo(db)
	recipeRepo := NewSQLiteRecipeRepo(db)
	ctx := context.Background()

	require.NoError(t, recipeRepo.Create(ctx, testutil.NewTestRecipe("Omlet",
		testutil.WithSlotType(domain.SlotBreakfast))))
	require.NoError(t, recipeRepo.Create(ctx, testutil.NewTestRecipe("Menemen",
		testutil.WithSlotType(domain.SlotBreakfast))))
	require.NoError(t, recipeRepo.Create(ctx, testutil.NewTestRecipe("Köfte",
		testutil.WithSlotType(domain.SlotDinner))))

	stats, err := repo.Stats(ctx, "normal")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRecipes)
	assert.Equal(t, 2, stats.SlotDistribution[domain.SlotBreakfast])
	assert.Equal(t, 1, stats.SlotDistribution[domain.SlotDinner])
	assert.Contains(t, stats.MissingSlotTypes, domain.SlotLunch)
	assert.Contains(t, stats.MissingSlotTypes, domain.SlotSpecialDrink)
	assert.NotContains(t, stats.MissingSlotTypes, domain.SlotBreakfast)
}

func TestPoolRepo_Stats_EmptyPool(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePoolRepo(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx, "hastalik")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRecipes)
	assert.Len(t, stats.MissingSlotTypes, len(domain.SlotTypes))
}
