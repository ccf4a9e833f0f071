package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations and seeds the default catalogue rows.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := seedDefaultPools(db); err != nil {
		return fmt.Errorf("seeding default pools: %w", err)
	}
	if err := seedDefaultTemplates(db); err != nil {
		return fmt.Errorf("seeding default templates: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		slot_type     TEXT NOT NULL
		              CHECK(slot_type IN ('kahvalti','ara_ogun_1','ogle','ara_ogun_2','aksam','ara_ogun_3','ozel_icecek')),
		pool_type     TEXT NOT NULL DEFAULT '',
		content_21_25 TEXT NOT NULL,
		content_26_29 TEXT NOT NULL,
		content_30_33 TEXT NOT NULL,
		content_34_plus TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_recipes_pool_slot ON recipes(pool_type, slot_type)`,

	`CREATE TABLE IF NOT EXISTS pools (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '#6b2fa3',
		is_active   INTEGER NOT NULL DEFAULT 1,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS diet_templates (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS template_meals (
		id          TEXT PRIMARY KEY,
		template_id TEXT NOT NULL REFERENCES diet_templates(id) ON DELETE CASCADE,
		time_label  TEXT NOT NULL,
		meal_name   TEXT NOT NULL,
		slot_type   TEXT NOT NULL
		            CHECK(slot_type IN ('kahvalti','ara_ogun_1','ogle','ara_ogun_2','aksam','ara_ogun_3','ozel_icecek')),
		sort_order  INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_template_meals_template ON template_meals(template_id)`,

	`CREATE TABLE IF NOT EXISTS packages (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL UNIQUE,
		description            TEXT NOT NULL DEFAULT '',
		list_count             INTEGER NOT NULL CHECK(list_count >= 1),
		days_per_list          INTEGER NOT NULL CHECK(days_per_list >= 1),
		weight_change_per_list REAL NOT NULL DEFAULT 0,
		save_path              TEXT NOT NULL DEFAULT '',
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS package_recipes (
		package_id TEXT NOT NULL REFERENCES packages(id) ON DELETE CASCADE,
		recipe_id  TEXT NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		PRIMARY KEY (package_id, recipe_id)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,

	`INSERT OR IGNORE INTO settings (key, value) VALUES ('days_count', '4')`,
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('save_path', '')`,
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('footer_phone', '')`,
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('footer_website', '')`,
	`INSERT OR IGNORE INTO settings (key, value) VALUES ('footer_instagram', '')`,
}

// seedDefaultPools inserts the two historical pools on an empty pools table.
func seedDefaultPools(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM pools`).Scan(&count); err != nil {
		return fmt.Errorf("counting pools: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		id, name, desc, color string
		order                 int
	}{
		{"pool-normal", "normal", "Standart diyet tarifleri", "#6b2fa3", 1},
		{"pool-hastalik", "hastalik", "Özel durum tarifleri", "#e74c3c", 2},
	}
	for _, p := range defaults {
		if _, err := db.Exec(
			`INSERT INTO pools (id, name, description, color, is_active, sort_order, created_at)
			 VALUES (?, ?, ?, ?, 1, ?, datetime('now'))`,
			p.id, p.name, p.desc, p.color, p.order,
		); err != nil {
			return fmt.Errorf("inserting pool %s: %w", p.name, err)
		}
	}
	return nil
}

// seedDefaultTemplates inserts the two stock daily schedules on an empty
// diet_templates table.
func seedDefaultTemplates(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM diet_templates`).Scan(&count); err != nil {
		return fmt.Errorf("counting templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	type slot struct {
		time, name, slotType string
	}
	templates := []struct {
		id, name string
		slots    []slot
	}{
		{
			id: "tpl-2-ogun", name: "2 Öğünlü",
			slots: []slot{
				{"10:00", "Kahvaltı", "kahvalti"},
				{"12:30", "Ara Öğün 1", "ara_ogun_1"},
				{"14:00", "Özel İçecek", "ozel_icecek"},
				{"15:30", "Ara Öğün 2", "ara_ogun_2"},
				{"17:30", "Akşam Yemeği", "aksam"},
				{"20:30", "Ara Öğün 3", "ara_ogun_3"},
			},
		},
		{
			id: "tpl-3-ogun", name: "3 Öğünlü",
			slots: []slot{
				{"08:00", "Kahvaltı", "kahvalti"},
				{"10:30", "Ara Öğün 1", "ara_ogun_1"},
				{"12:00", "Öğle Yemeği", "ogle"},
				{"15:00", "Ara Öğün 2", "ara_ogun_2"},
				{"18:00", "Akşam Yemeği", "aksam"},
				{"21:00", "Özel İçecek", "ozel_icecek"},
			},
		},
	}

	for _, tpl := range templates {
		if _, err := db.Exec(
			`INSERT INTO diet_templates (id, name, created_at, updated_at)
			 VALUES (?, ?, datetime('now'), datetime('now'))`,
			tpl.id, tpl.name,
		); err != nil {
			return fmt.Errorf("inserting template %s: %w", tpl.name, err)
		}
		for i, s := range tpl.slots {
			if _, err := db.Exec(
				`INSERT INTO template_meals (id, template_id, time_label, meal_name, slot_type, sort_order)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				fmt.Sprintf("%s-slot-%d", tpl.id, i+1), tpl.id, s.time, s.name, s.slotType, i+1,
			); err != nil {
				return fmt.Errorf("inserting template meal %s/%s: %w", tpl.name, s.name, err)
			}
		}
	}
	return nil
}
