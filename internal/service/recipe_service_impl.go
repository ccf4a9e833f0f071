package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/repository"
)

type recipeService struct {
	recipes repository.RecipeRepo
	pools   repository.PoolRepo
}

func NewRecipeService(recipes repository.RecipeRepo, pools repository.PoolRepo) RecipeService {
	return &recipeService{recipes: recipes, pools: pools}
}

func (s *recipeService) Create(ctx context.Context, r *domain.Recipe) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.PoolType == "" {
		r.PoolType = "normal"
	}
	if err := r.Normalize(); err != nil {
		return err
	}
	return s.recipes.Create(ctx, r)
}

func (s *recipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *recipeService) List(ctx context.Context, poolType string, slot domain.SlotType) ([]domain.Recipe, error) {
	return s.recipes.List(ctx, poolType, slot)
}

func (s *recipeService) Update(ctx context.Context, r *domain.Recipe) error {
	if err := r.Normalize(); err != nil {
		return err
	}
	return s.recipes.Update(ctx, r)
}

func (s *recipeService) Delete(ctx context.Context, id string) error {
	return s.recipes.Delete(ctx, id)
}

func (s *recipeService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.recipes.BulkDelete(ctx, ids)
}

func (s *recipeService) CopyToPool(ctx context.Context, ids []string, targetPool string) (int64, error) {
	if err := s.requirePool(ctx, targetPool); err != nil {
		return 0, err
	}
	return s.recipes.CopyToPool(ctx, ids, targetPool)
}

func (s *recipeService) MoveToPool(ctx context.Context, ids []string, targetPool string) (int64, error) {
	if err := s.requirePool(ctx, targetPool); err != nil {
		return 0, err
	}
	return s.recipes.MoveToPool(ctx, ids, targetPool)
}

func (s *recipeService) requirePool(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("target pool is required")
	}
	if _, err := s.pools.GetByName(ctx, name); err != nil {
		return err
	}
	return nil
}
