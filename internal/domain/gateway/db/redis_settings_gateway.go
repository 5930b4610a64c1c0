package db

import (
	"context"
	"fmt"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/redis"
)

const (
	preferencesKey = "preferences"
	locationKey    = "location"
	profilesKey    = "profiles"
)

// RedisSettingsGateway stores settings as JSON under <namespace>::<profile>::<key>
// and tracks known profiles in a set.
type RedisSettingsGateway struct {
	client *redis.Client
}

var _ SettingsGateway = (*RedisSettingsGateway)(nil)

func NewRedisSettingsGateway(client *redis.Client) *RedisSettingsGateway {
	return &RedisSettingsGateway{client: client}
}

func (gateway *RedisSettingsGateway) GetPreferences(ctx context.Context, profileID string) (*entity.Preferences, error) {
	var preferences entity.Preferences
	found, err := gateway.client.GetJSON(ctx, gateway.client.Key(profileID, preferencesKey), &preferences)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences of %s: %w", profileID, err)
	}
	if !found {
		return nil, nil
	}
	return &preferences, nil
}

func (gateway *RedisSettingsGateway) SavePreferences(ctx context.Context, profileID string, preferences entity.Preferences) error {
	if err := gateway.client.SetJSON(ctx, gateway.client.Key(profileID, preferencesKey), preferences, 0); err != nil {
		return fmt.Errorf("failed to save preferences of %s: %w", profileID, err)
	}
	return gateway.registerProfile(ctx, profileID)
}

func (gateway *RedisSettingsGateway) GetLocation(ctx context.Context, profileID string) (*entity.Location, error) {
	var location entity.Location
	found, err := gateway.client.GetJSON(ctx, gateway.client.Key(profileID, locationKey), &location)
	if err != nil {
		return nil, fmt.Errorf("failed to read location of %s: %w", profileID, err)
	}
	if !found {
		return nil, nil
	}
	return &location, nil
}

func (gateway *RedisSettingsGateway) SaveLocation(ctx context.Context, profileID string, location entity.Location) error {
	if err := gateway.client.SetJSON(ctx, gateway.client.Key(profileID, locationKey), location, 0); err != nil {
		return fmt.Errorf("failed to save location of %s: %w", profileID, err)
	}
	return gateway.registerProfile(ctx, profileID)
}

func (gateway *RedisSettingsGateway) ListProfiles(ctx context.Context) ([]string, error) {
	profiles, err := gateway.client.SMembers(ctx, gateway.client.Key(profilesKey))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (gateway *RedisSettingsGateway) registerProfile(ctx context.Context, profileID string) error {
	if err := gateway.client.SAdd(ctx, gateway.client.Key(profilesKey), profileID); err != nil {
		return fmt.Errorf("failed to register profile %s: %w", profileID, err)
	}
	return nil
}
