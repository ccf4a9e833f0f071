package repository

import (
	"context"
	"errors"

	"github.com/merveatik/dietbot/internal/domain"
)

// ErrNotFound is returned when a keyed record does not exist.
var ErrNotFound = errors.New("not found")

type RecipeRepo interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	// List returns recipes filtered by pool tag and/or slot type; empty
	// values mean no filter on that dimension.
	List(ctx context.Context, poolType string, slot domain.SlotType) ([]domain.Recipe, error)
	// ListByScope returns the candidates for one generation slot: the
	// recipes in the scope's package (or pool) with the given slot type.
	ListByScope(ctx context.Context, scope domain.Scope, slot domain.SlotType) ([]domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	CopyToPool(ctx context.Context, ids []string, targetPool string) (int64, error)
	MoveToPool(ctx context.Context, ids []string, targetPool string) (int64, error)
}

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
	// Update replaces the template name and its full slot sequence.
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id string) error
}

type PackageRepo interface {
	Create(ctx context.Context, p *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetByName(ctx context.Context, name string) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, p *domain.Package) error
	Delete(ctx context.Context, id string) error
	// SetRecipes replaces the package's recipe membership.
	SetRecipes(ctx context.Context, packageID string, recipeIDs []string) error
	ListRecipeIDs(ctx context.Context, packageID string) ([]string, error)
}

type PoolRepo interface {
	Create(ctx context.Context, p *domain.Pool) error
	GetByName(ctx context.Context, name string) (*domain.Pool, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Pool, error)
	Update(ctx context.Context, p *domain.Pool) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, poolName string) (*domain.PoolStats, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key, fallback string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}
