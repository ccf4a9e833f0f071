package repository

import (
	"context"
	"testing"

	"github.com/merveatik/dietbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepo_GetSeededDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	days, err := repo.Get(ctx, "days_count", "7")
	require.NoError(t, err)
	assert.Equal(t, "4", days)
}

func TestSettingsRepo_GetFallback(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing_key", "varsayilan")
	require.NoError(t, err)
	assert.Equal(t, "varsayilan", got)
}

func TestSettingsRepo_SetOverwrites(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "footer_phone", "0212 000 00 00"))
	require.NoError(t, repo.Set(ctx, "footer_phone", "0555 000 00 00"))

	got, err := repo.Get(ctx, "footer_phone", "")
	require.NoError(t, err)
	assert.Equal(t, "0555 000 00 00", got)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, "days_count")
	assert.Contains(t, all, "footer_phone")
}
