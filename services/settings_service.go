package services

import (
	"context"
	"strings"

	"study-assistant/models"
)

// SettingsService reads and writes application-wide settings
type SettingsService struct {
	repo ConfigRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo ConfigRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// APIKey returns the stored AI credential. It is read on every call so a
// newly saved key takes effect immediately.
func (s *SettingsService) APIKey(ctx context.Context) (string, error) {
	key, ok, err := s.repo.GetConfigValue(ctx, models.APIKeyConfigKey)
	if err != nil {
		return "", err
	}
	if !ok || key == "" {
		return "", ErrAPIKeyMissing
	}
	return key, nil
}

func (s *SettingsService) SetAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyAPIKey
	}
	return s.repo.SetConfigValue(ctx, models.APIKeyConfigKey, key)
}
