package settings

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"skydry-api/internal/domain/entity"
	"skydry-api/internal/domain/gateway/api"
	"skydry-api/internal/domain/gateway/db"
	"skydry-api/pkg/log"
)

// FallbackAddress is shown when coordinates are known but reverse geocoding failed
const FallbackAddress = "Current location"

type settingsUseCase struct {
	settingsGateway db.SettingsGateway
	geocoderGateway api.GeocoderGateway
}

// NewSettingsUseCase creates the settings use case. A nil geocoder always yields FallbackAddress.
func NewSettingsUseCase(settingsGateway db.SettingsGateway, geocoderGateway api.GeocoderGateway) UseCase {
	return &settingsUseCase{
		settingsGateway: settingsGateway,
		geocoderGateway: geocoderGateway,
	}
}

func (uc *settingsUseCase) GetPreferences(ctx context.Context, profileID string) (entity.Preferences, error) {
	preferences, err := uc.settingsGateway.GetPreferences(ctx, profileID)
	if err != nil {
		return entity.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	if preferences == nil {
		return entity.DefaultPreferences(), nil
	}
	return *preferences, nil
}

func (uc *settingsUseCase) SavePreferences(ctx context.Context, profileID string, preferences entity.Preferences) (entity.Preferences, error) {
	if err := ValidatePreferences(preferences); err != nil {
		return entity.Preferences{}, err
	}
	if err := uc.settingsGateway.SavePreferences(ctx, profileID, preferences); err != nil {
		return entity.Preferences{}, fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Info("Preferences saved",
		zap.String("profile_id", profileID),
		zap.String("work_start", preferences.WorkStart),
		zap.String("work_end", preferences.WorkEnd),
		zap.Float64("preference", preferences.Preference))
	return preferences, nil
}

func (uc *settingsUseCase) ResetPreferences(ctx context.Context, profileID string) (entity.Preferences, error) {
	return uc.SavePreferences(ctx, profileID, entity.DefaultPreferences())
}

func (uc *settingsUseCase) GetLocation(ctx context.Context, profileID string) (entity.Location, error) {
	location, err := uc.settingsGateway.GetLocation(ctx, profileID)
	if err != nil {
		return entity.Location{}, fmt.Errorf("failed to load location: %w", err)
	}
	if location == nil {
		return entity.DefaultLocation(), nil
	}
	return *location, nil
}

func (uc *settingsUseCase) ResolveLocation(ctx context.Context, profileID string, lat, lon *float64) (entity.Location, error) {
	if lat == nil && lon == nil {
		return entity.DefaultLocation(), nil
	}
	if lat == nil || lon == nil {
		return entity.Location{}, fmt.Errorf("%w: lat and lon must be given together", ErrInvalidLocation)
	}
	if err := ValidateCoordinates(*lat, *lon); err != nil {
		return entity.Location{}, err
	}

	location := entity.Location{
		Lat:     *lat,
		Lon:     *lon,
		Address: uc.reverseGeocode(ctx, *lat, *lon),
	}
	if err := uc.settingsGateway.SaveLocation(ctx, profileID, location); err != nil {
		return entity.Location{}, fmt.Errorf("failed to save location: %w", err)
	}
	return location, nil
}

func (uc *settingsUseCase) ListProfiles(ctx context.Context) ([]string, error) {
	profiles, err := uc.settingsGateway.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (uc *settingsUseCase) reverseGeocode(ctx context.Context, lat, lon float64) string {
	if uc.geocoderGateway == nil {
		return FallbackAddress
	}

	address, err := uc.geocoderGateway.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		if !errors.Is(err, api.ErrGeocoderNotConfigured) {
			log.Warn("Reverse geocoding failed, using fallback address",
				zap.Float64("lat", lat),
				zap.Float64("lon", lon),
				zap.Error(err))
		}
		return FallbackAddress
	}
	if address == "" {
		return FallbackAddress
	}
	return address
}
