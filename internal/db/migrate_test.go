package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// OpenDB already migrated once; a second run must be a no-op.
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM pools`).Scan(&count))
	assert.Equal(t, 2, count, "default pools seeded exactly once")
}

func TestMigrate_SeedsDefaults(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var tplCount int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM diet_templates`).Scan(&tplCount))
	assert.Equal(t, 2, tplCount)

	var slotCount int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM template_meals WHERE template_id = 'tpl-3-ogun'`).Scan(&slotCount))
	assert.Equal(t, 6, slotCount)

	var daysCount string
	require.NoError(t, database.QueryRow(
		`SELECT value FROM settings WHERE key = 'days_count'`).Scan(&daysCount))
	assert.Equal(t, "4", daysCount)

	var footerKeys int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM settings WHERE key IN ('footer_phone', 'footer_website', 'footer_instagram')`).Scan(&footerKeys))
	assert.Equal(t, 3, footerKeys)
}

func TestOpenDB_AppliesPragmas(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var fk int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)

	var timeout int
	require.NoError(t, database.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, 5000, timeout)
}

func TestMigrate_RejectsUnknownSlotType(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO recipes (id, name, slot_type, pool_type, content_21_25, content_26_29, content_30_33, content_34_plus, created_at, updated_at)
		 VALUES ('r1', 'x', 'brunch', 'normal', 'a', 'a', 'a', 'a', datetime('now'), datetime('now'))`)
	assert.Error(t, err, "CHECK constraint should reject unknown slot types")
}
