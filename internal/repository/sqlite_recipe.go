package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
)

const recipeColumns = `id, name, slot_type, pool_type,
	content_21_25, content_26_29, content_30_33, content_34_plus,
	created_at, updated_at`

// SQLiteRecipeRepo implements RecipeRepo using a SQLite database.
type SQLiteRecipeRepo struct {
	db *sql.DB
}

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(db *sql.DB) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: db}
}

func (r *SQLiteRecipeRepo) Create(ctx context.Context, rec *domain.Recipe) error {
	query := `INSERT INTO recipes (` + recipeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Name,
		string(rec.SlotType),
		rec.PoolType,
		rec.Content21to25,
		rec.Content26to29,
		rec.Content30to33,
		rec.Content34Plus,
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanRecipe(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("recipe %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning recipe: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRecipeRepo) List(ctx context.Context, poolType string, slot domain.SlotType) ([]domain.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE 1=1`
	var args []any
	if poolType != "" {
		query += ` AND pool_type = ?`
		args = append(args, poolType)
	}
	if slot != "" {
		query += ` AND slot_type = ?`
		args = append(args, string(slot))
	}
	query += ` ORDER BY name`

	return r.queryRecipes(ctx, query, args...)
}

func (r *SQLiteRecipeRepo) ListByScope(ctx context.Context, scope domain.Scope, slot domain.SlotType) ([]domain.Recipe, error) {
	if scope.IsPackage() {
		query := `SELECT ` + recipeColumns + ` FROM recipes
			WHERE slot_type = ?
			  AND id IN (SELECT recipe_id FROM package_recipes WHERE package_id = ?)
			ORDER BY name`
		return r.queryRecipes(ctx, query, string(slot), scope.PackageID)
	}
	return r.List(ctx, scope.PoolType, slot)
}

func (r *SQLiteRecipeRepo) Update(ctx context.Context, rec *domain.Recipe) error {
	query := `UPDATE recipes SET name = ?, slot_type = ?, pool_type = ?,
		content_21_25 = ?, content_26_29 = ?, content_30_33 = ?, content_34_plus = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		rec.Name,
		string(rec.SlotType),
		rec.PoolType,
		rec.Content21to25,
		rec.Content26to29,
		rec.Content30to33,
		rec.Content34Plus,
		nowUTC(),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `DELETE FROM recipes WHERE id IN (` + placeholders(len(ids)) + `)`
	res, err := r.db.ExecContext(ctx, query, toAnySlice(ids)...)
	if err != nil {
		return 0, fmt.Errorf("bulk deleting recipes: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRecipeRepo) CopyToPool(ctx context.Context, ids []string, targetPool string) (int64, error) {
	var copied int64
	for _, id := range ids {
		rec, err := r.GetByID(ctx, id)
		if err != nil {
			return copied, err
		}
		query := `INSERT INTO recipes (` + recipeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		_, err = r.db.ExecContext(ctx, query,
			rec.ID+"-"+targetPool,
			rec.Name,
			string(rec.SlotType),
			targetPool,
			rec.Content21to25,
			rec.Content26to29,
			rec.Content30to33,
			rec.Content34Plus,
			nowUTC(),
			nowUTC(),
		)
		if err != nil {
			return copied, fmt.Errorf("copying recipe %s: %w", id, err)
		}
		copied++
	}
	return copied, nil
}

func (r *SQLiteRecipeRepo) MoveToPool(ctx context.Context, ids []string, targetPool string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE recipes SET pool_type = ?, updated_at = ? WHERE id IN (` + placeholders(len(ids)) + `)`
	args := append([]any{targetPool, nowUTC()}, toAnySlice(ids)...)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("moving recipes: %w", err)
	}
	return res.RowsAffected()
}

func (r *SQLiteRecipeRepo) queryRecipes(ctx context.Context, query string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

func scanRecipe(scan func(dest ...any) error) (*domain.Recipe, error) {
	var rec domain.Recipe
	var slotStr, createdAtStr, updatedAtStr string

	err := scan(
		&rec.ID, &rec.Name, &slotStr, &rec.PoolType,
		&rec.Content21to25, &rec.Content26to29, &rec.Content30to33, &rec.Content34Plus,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	rec.SlotType = domain.SlotType(slotStr)

	var parseErr error
	rec.CreatedAt, parseErr = parseTime(createdAtStr, "created_at")
	if parseErr != nil {
		return nil, parseErr
	}
	rec.UpdatedAt, parseErr = parseTime(updatedAtStr, "updated_at")
	if parseErr != nil {
		return nil, parseErr
	}
	return &rec, nil
}
