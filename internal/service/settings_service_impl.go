package service

import (
	"context"

	"github.com/merveatik/dietbot/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, key, fallback string) (string, error) {
	return s.settings.Get(ctx, key, fallback)
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	return s.settings.Set(ctx, key, value)
}

func (s *settingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}
