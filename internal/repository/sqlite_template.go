package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database.
type SQLiteTemplateRepo struct {
	db *sql.DB
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(db *sql.DB) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: db}
}

func (r *SQLiteTemplateRepo) Create(ctx context.Context, t *domain.Template) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO diet_templates (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.Name, t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting template: %w", err)
	}

	if err := insertSlots(ctx, tx, t.ID, t.Slots); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	var t domain.Template
	var createdAtStr, updatedAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM diet_templates WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("template %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning template: %w", err)
	}

	t.CreatedAt, err = parseTime(createdAtStr, "created_at")
	if err != nil {
		return nil, err
	}
	t.UpdatedAt, err = parseTime(updatedAtStr, "updated_at")
	if err != nil {
		return nil, err
	}

	slots, err := r.listSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Slots = slots
	return &t, nil
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]domain.Template, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM diet_templates ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.Template
	for rows.Next() {
		var t domain.Template
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&t.ID, &t.Name, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning template row: %w", err)
		}
		if t.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
			return nil, err
		}
		if t.UpdatedAt, err = parseTime(updatedAtStr, "updated_at"); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}

	for i := range templates {
		slots, err := r.listSlots(ctx, templates[i].ID)
		if err != nil {
			return nil, err
		}
		templates[i].Slots = slots
	}
	return templates, nil
}

// Update replaces the template name and rewrites the full slot sequence.
func (r *SQLiteTemplateRepo) Update(ctx context.Context, t *domain.Template) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE diet_templates SET name = ?, updated_at = ? WHERE id = ?`,
		t.Name, nowUTC(), t.ID)
	if err != nil {
		return fmt.Errorf("updating template: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM template_meals WHERE template_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clearing template meals: %w", err)
	}
	if err := insertSlots(ctx, tx, t.ID, t.Slots); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing template update: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM diet_templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

func (r *SQLiteTemplateRepo) listSlots(ctx context.Context, templateID string) ([]domain.MealSlot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT time_label, meal_name, slot_type, sort_order
		 FROM template_meals WHERE template_id = ? ORDER BY sort_order`, templateID)
	if err != nil {
		return nil, fmt.Errorf("listing template meals: %w", err)
	}
	defer rows.Close()

	var slots []domain.MealSlot
	for rows.Next() {
		var s domain.MealSlot
		var slotStr string
		if err := rows.Scan(&s.TimeLabel, &s.Name, &slotStr, &s.SortOrder); err != nil {
			return nil, fmt.Errorf("scanning template meal: %w", err)
		}
		s.SlotType = domain.SlotType(slotStr)
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template meals: %w", err)
	}
	return slots, nil
}

func insertSlots(ctx context.Context, tx *sql.Tx, templateID string, slots []domain.MealSlot) error {
	for i, s := range slots {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO template_meals (id, template_id, time_label, meal_name, slot_type, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), templateID, s.TimeLabel, s.Name, string(s.SlotType), i+1)
		if err != nil {
			return fmt.Errorf("inserting template meal %d: %w", i+1, err)
		}
	}
	return nil
}
