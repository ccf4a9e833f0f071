package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/merveatik/dietbot/internal/domain"
)

const packageColumns = `id, name, description, list_count, days_per_list,
	weight_change_per_list, save_path, created_at, updated_at`

// SQLitePackageRepo implements PackageRepo using a SQLite database.
type SQLitePackageRepo struct {
	db *sql.DB
}

// NewSQLitePackageRepo creates a new SQLitePackageRepo.
func NewSQLitePackageRepo(db *sql.DB) *SQLitePackageRepo {
	return &SQLitePackageRepo{db: db}
}

func (r *SQLitePackageRepo) Create(ctx context.Context, p *domain.Package) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO packages (`+packageColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.ListCount, p.DaysPerList,
		p.WeightChangePerList, p.SavePath,
		p.CreatedAt.Format(time.RFC3339), p.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting package: %w", err)
	}
	return nil
}

func (r *SQLitePackageRepo) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE id = ?`, id)
	p, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("package %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePackageRepo) GetByName(ctx context.Context, name string) (*domain.Package, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM packages WHERE name = ?`, name)
	p, err := scanPackage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("package %q: %w", name, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePackageRepo) List(ctx context.Context) ([]domain.Package, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+packageColumns+` FROM packages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	defer rows.Close()

	var packages []domain.Package
	for rows.Next() {
		p, err := scanPackage(rows.Scan)
		if err != nil {
			return nil, err
		}
		packages = append(packages, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating packages: %w", err)
	}
	return packages, nil
}

func (r *SQLitePackageRepo) Update(ctx context.Context, p *domain.Package) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE packages SET name = ?, description = ?, list_count = ?,
		 days_per_list = ?, weight_change_per_list = ?, save_path = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Description, p.ListCount, p.DaysPerList,
		p.WeightChangePerList, p.SavePath, nowUTC(), p.ID)
	if err != nil {
		return fmt.Errorf("updating package: %w", err)
	}
	return nil
}

func (r *SQLitePackageRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting package: %w", err)
	}
	return nil
}

// SetRecipes replaces the package's recipe membership in one transaction.
func (r *SQLitePackageRepo) SetRecipes(ctx context.Context, packageID string, recipeIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM package_recipes WHERE package_id = ?`, packageID); err != nil {
		return fmt.Errorf("clearing package recipes: %w", err)
	}
	for _, rid := range recipeIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO package_recipes (package_id, recipe_id) VALUES (?, ?)`,
			packageID, rid); err != nil {
			return fmt.Errorf("linking recipe %s: %w", rid, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing package recipes: %w", err)
	}
	return nil
}

func (r *SQLitePackageRepo) ListRecipeIDs(ctx context.Context, packageID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT recipe_id FROM package_recipes WHERE package_id = ?`, packageID)
	if err != nil {
		return nil, fmt.Errorf("listing package recipes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning recipe id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating package recipes: %w", err)
	}
	return ids, nil
}

func scanPackage(scan func(dest ...any) error) (*domain.Package, error) {
	var p domain.Package
	var createdAtStr, updatedAtStr string
	err := scan(&p.ID, &p.Name, &p.Description, &p.ListCount, &p.DaysPerList,
		&p.WeightChangePerList, &p.SavePath, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning package: %w", err)
	}
	if p.CreatedAt, err = parseTime(createdAtStr, "created_at"); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTime(updatedAtStr, "updated_at"); err != nil {
		return nil, err
	}
	return &p, nil
}
