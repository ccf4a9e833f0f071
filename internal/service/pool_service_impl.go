package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/repository"
)

// defaultPools cannot be deleted; the legacy generation path and the seed
// data depend on them.
var defaultPools = map[string]bool{"normal": true, "hastalik": true}

type poolService struct {
	pools repository.PoolRepo
}

func NewPoolService(pools repository.PoolRepo) PoolService {
	return &poolService{pools: pools}
}

func (s *poolService) Create(ctx context.Context, p *domain.Pool) error {
	if p.Name == "" {
		return fmt.Errorf("pool name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Color == "" {
		p.Color = "#6b2fa3"
	}
	return s.pools.Create(ctx, p)
}

func (s *poolService) GetByName(ctx context.Context, name string) (*domain.Pool, error) {
	return s.pools.GetByName(ctx, name)
}

func (s *poolService) List(ctx context.Context, activeOnly bool) ([]domain.Pool, error) {
	return s.pools.List(ctx, activeOnly)
}

func (s *poolService) Update(ctx context.Context, p *domain.Pool) error {
	return s.pools.Update(ctx, p)
}

func (s *poolService) Delete(ctx context.Context, name string) error {
	if defaultPools[name] {
		return fmt.Errorf("pool %q is built in and cannot be deleted", name)
	}
	pool, err := s.pools.GetByName(ctx, name)
	if err != nil {
		return err
	}
	stats, err := s.pools.Stats(ctx, name)
	if err != nil {
		return err
	}
	if stats.TotalRecipes > 0 {
		return fmt.Errorf("pool %q still holds %d recipes; move or delete them first",
			name, stats.TotalRecipes)
	}
	return s.pools.Delete(ctx, pool.ID)
}

func (s *poolService) Stats(ctx context.Context, poolName string) (*domain.PoolStats, error) {
	if _, err := s.pools.GetByName(ctx, poolName); err != nil {
		return nil, err
	}
	return s.pools.Stats(ctx, poolName)
}
