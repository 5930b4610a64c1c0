package settings

import (
	"context"

	"skydry-api/internal/domain/entity"
)

type UseCase interface {
	// GetPreferences returns the stored preferences of a profile or the defaults
	GetPreferences(ctx context.Context, profileID string) (entity.Preferences, error)

	// SavePreferences validates and stores the preferences of a profile
	SavePreferences(ctx context.Context, profileID string, preferences entity.Preferences) (entity.Preferences, error)

	// ResetPreferences stores and returns the default preferences
	ResetPreferences(ctx context.Context, profileID string) (entity.Preferences, error)

	// GetLocation returns the stored location of a profile or the default location
	GetLocation(ctx context.Context, profileID string) (entity.Location, error)

	// ResolveLocation reverse geocodes the coordinates and stores the result.
	// Both coordinates nil resolve to the default location, which is never stored.
	ResolveLocation(ctx context.Context, profileID string, lat, lon *float64) (entity.Location, error)

	// ListProfiles returns every profile with stored settings
	ListProfiles(ctx context.Context) ([]string, error)
}
