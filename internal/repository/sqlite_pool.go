package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
)

// SQLitePoolRepo implements PoolRepo using a SQLite database.
type SQLitePoolRepo struct {
	db *sql.DB
}

// NewSQLitePoolRepo creates a new SQLitePoolRepo.
func NewSQLitePoolRepo(db *sql.DB) *SQLitePoolRepo {
	return &SQLitePoolRepo{db: db}
}

func (r *SQLitePoolRepo) Create(ctx context.Context, p *domain.Pool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pools (id, name, description, color, is_active, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Color, boolToInt(p.IsActive), p.SortOrder,
		p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting pool: %w", err)
	}
	return nil
}

func (r *SQLitePoolRepo) GetByName(ctx context.Context, name string) (*domain.Pool, error) {
	var p domain.Pool
	var isActive int
	var createdAtStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, color, is_active, sort_order, created_at
		 FROM pools WHERE name = ?`, name).
		Scan(&p.ID, &p.Name, &p.Description, &p.Color, &isActive, &p.SortOrder, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pool %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning pool: %w", err)
	}
	p.IsActive = isActive != 0
	if p.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePoolRepo) List(ctx context.Context, activeOnly bool) ([]domain.Pool, error) {
	query := `SELECT id, name, description, color, is_active, sort_order, created_at
	          FROM pools`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing pools: %w", err)
	}
	defer rows.Close()

	var pools []domain.Pool
	for rows.Next() {
		var p domain.Pool
		var isActive int
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Color, &isActive,
			&p.SortOrder, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning pool row: %w", err)
		}
		p.IsActive = isActive != 0
		if p.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
			return nil, err
		}
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pools: %w", err)
	}
	return pools, nil
}

func (r *SQLitePoolRepo) Update(ctx context.Context, p *domain.Pool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE pools SET name = ?, description = ?, color = ?, is_active = ?, sort_order = ?
		 WHERE id = ?`,
		p.Name, p.Description, p.Color, boolToInt(p.IsActive), p.SortOrder, p.ID)
	if err != nil {
		return fmt.Errorf("updating pool: %w", err)
	}
	return nil
}

func (r *SQLitePoolRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pools WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting pool: %w", err)
	}
	return nil
}

// Stats reports the recipe count and per-slot distribution for a pool,
// flagging the slot types with no recipes at all. A pool missing a slot
// type produces the fallback line on every day that uses the slot.
func (r *SQLitePoolRepo) Stats(ctx context.Context, poolName string) (*domain.PoolStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot_type, COUNT(*) FROM recipes WHERE pool_type = ? GROUP BY slot_type`,
		poolName)
	if err != nil {
		return nil, fmt.Errorf("counting pool recipes: %w", err)
	}
	defer rows.Close()

	stats := &domain.PoolStats{
		SlotDistribution: make(map[domain.SlotType]int),
	}
	for rows.Next() {
		var slotStr string
		var count int
		if err := rows.Scan(&slotStr, &count); err != nil {
			return nil, fmt.Errorf("scanning slot count: %w", err)
		}
		stats.SlotDistribution[domain.SlotType(slotStr)] = count
		stats.TotalRecipes += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slot counts: %w", err)
	}

	for _, slot := range domain.SlotTypes {
		if stats.SlotDistribution[slot] == 0 {
			stats.MissingSlotTypes = append(stats.MissingSlotTypes, slot)
		}
	}
	return stats, nil
}
