package db

import (
	"context"

	"skydry-api/internal/domain/entity"
)

// SettingsGateway persists the per-profile preferences and location.
// Getters return nil without error when nothing was stored yet.
type SettingsGateway interface {
	GetPreferences(ctx context.Context, profileID string) (*entity.Preferences, error)
	SavePreferences(ctx context.Context, profileID string, preferences entity.Preferences) error
	GetLocation(ctx context.Context, profileID string) (*entity.Location, error)
	SaveLocation(ctx context.Context, profileID string, location entity.Location) error
	// ListProfiles returns every profile that saved settings at least once
	ListProfiles(ctx context.Context) ([]string, error)
}
