package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/merveatik/dietbot/internal/domain"
	"github.com/merveatik/dietbot/internal/repository"
)

type templateService struct {
	templates repository.TemplateRepo
}

func NewTemplateService(templates repository.TemplateRepo) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) Create(ctx context.Context, t *domain.Template) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if err := t.Validate(); err != nil {
		return err
	}
	return s.templates.Create(ctx, t)
}

func (s *templateService) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	return s.templates.GetByID(ctx, id)
}

func (s *templateService) List(ctx context.Context) ([]domain.Template, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Update(ctx context.Context, t *domain.Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return s.templates.Update(ctx, t)
}

func (s *templateService) Delete(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}
