package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/repository"
)

type packageService struct {
	packages repository.PackageRepo
}

func NewPackageService(packages repository.PackageRepo) PackageService {
	return &packageService{packages: packages}
}

func (s *packageService) Create(ctx context.Context, p *domain.Package) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := p.Validate(); err != nil {
		return err
	}
	return s.packages.Create(ctx, p)
}

func (s *packageService) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *packageService) GetByName(ctx context.Context, name string) (*domain.Package, error) {
	return s.packages.GetByName(ctx, name)
}

func (s *packageService) List(ctx context.Context) ([]domain.Package, error) {
	return s.packages.List(ctx)
}

func (s *packageService) Update(ctx context.Context, p *domain.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return s.packages.Update(ctx, p)
}

func (s *packageService) Delete(ctx context.Context, id string) error {
	return s.packages.Delete(ctx, id)
}

func (s *packageService) SetRecipes(ctx context.Context, packageID string, recipeIDs []string) error {
	if _, err := s.packages.GetByID(ctx, packageID); err != nil {
		return err
	}
	return s.packages.SetRecipes(ctx, packageID, recipeIDs)
}

func (s *packageService) ListRecipeIDs(ctx context.Context, packageID string) ([]string, error) {
	return s.packages.ListRecipeIDs(ctx, packageID)
}
