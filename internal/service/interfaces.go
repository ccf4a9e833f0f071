package service

import (
	"context"

	"github.com/merveatik/dietbot/internal/domain"
)

type RecipeService interface {
	Create(ctx context.Context, r *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context, poolType string, slot domain.SlotType) ([]domain.Recipe, error)
	Update(ctx context.Context, r *domain.Recipe) error
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	CopyToPool(ctx context.Context, ids []string, targetPool string) (int64, error)
	MoveToPool(ctx context.Context, ids []string, targetPool string) (int64, error)
}

type TemplateService interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id string) error
}

type PackageService interface {
	Create(ctx context.Context, p *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetByName(ctx context.Context, name string) (*domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, p *domain.Package) error
	Delete(ctx context.Context, id string) error
	SetRecipes(ctx context.Context, packageID string, recipeIDs []string) error
	ListRecipeIDs(ctx context.Context, packageID string) ([]string, error)
}

type PoolService interface {
	Create(ctx context.Context, p *domain.Pool) error
	GetByName(ctx context.Context, name string) (*domain.Pool, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Pool, error)
	Update(ctx context.Context, p *domain.Pool) error
	// Delete refuses the built-in pools and any pool that still holds
	// recipes.
	Delete(ctx context.Context, name string) error
	Stats(ctx context.Context, poolName string) (*domain.PoolStats, error)
}

type SettingsService interface {
	Get(ctx context.Context, key, fallback string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

type GenerateService interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}
