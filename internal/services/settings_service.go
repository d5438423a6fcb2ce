package services

import (
	"context"
	"time"

	"taskboard.com/taskboard/internal/cache"
	dto "taskboard.com/taskboard/internal/data_models"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type SettingsService struct {
	repo  *repository.SettingsRepository
	cache *cache.BoardCache
}

func NewSettingsService(repo *repository.SettingsRepository, boardCache *cache.BoardCache) *SettingsService {
	return &SettingsService{
		repo:  repo,
		cache: boardCache,
	}
}

// Get returns the stored board settings for a user. First use yields
// ErrSettingsNotFound; the caller is expected to create a default then.
func (s *SettingsService) Get(ctx context.Context, userID string) (*model.BoardSettings, error) {
	if settings, ok := s.cache.LoadSettings(ctx, userID); ok {
		return settings, nil
	}

	settings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.StoreSettings(ctx, settings)
	return settings, nil
}

func (s *SettingsService) Save(ctx context.Context, req *dto.SaveSettingsRequest) (*model.BoardSettings, error) {
	settings := &model.BoardSettings{
		UserID:      req.UserID,
		ViewMode:    req.ViewMode,
		LastChanged: req.LastChanged,
	}
	if settings.LastChanged == "" {
		settings.LastChanged = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.cache.Evict(ctx, cache.SettingsKey(req.UserID))
	return settings, nil
}
