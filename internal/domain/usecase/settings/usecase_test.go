package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydry-api/internal/domain/entity"
)

type fakeSettingsGateway struct {
	preferences map[string]entity.Preferences
	locations   map[string]entity.Location
	err         error
}

func newFakeSettingsGateway() *fakeSettingsGateway {
	return &fakeSettingsGateway{
		preferences: map[string]entity.Preferences{},
		locations:   map[string]entity.Location{},
	}
}

func (f *fakeSettingsGateway) GetPreferences(_ context.Context, profileID string) (*entity.Preferences, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.preferences[profileID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeSettingsGateway) SavePreferences(_ context.Context, profileID string, preferences entity.Preferences) error {
	if f.err != nil {
		return f.err
	}
	f.preferences[profileID] = preferences
	return nil
}

func (f *fakeSettingsGateway) GetLocation(_ context.Context, profileID string) (*entity.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	if l, ok := f.locations[profileID]; ok {
		return &l, nil
	}
	return nil, nil
}

func (f *fakeSettingsGateway) SaveLocation(_ context.Context, profileID string, location entity.Location) error {
	if f.err != nil {
		return f.err
	}
	f.locations[profileID] = location
	return nil
}

func (f *fakeSettingsGateway) ListProfiles(context.Context) ([]string, error) {
	return nil, f.err
}

type fakeGeocoder struct {
	address string
	err     error
	calls   int
}

func (f *fakeGeocoder) ReverseGeocode(context.Context, float64, float64) (string, error) {
	f.calls++
	return f.address, f.err
}

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func TestValidatePreferences(t *testing.T) {
	tests := []struct {
		name        string
		preferences entity.Preferences
		valid       bool
	}{
		{"defaults", entity.DefaultPreferences(), true},
		{"full day", entity.Preferences{WorkStart: "00:00", WorkEnd: "23:59", Preference: 1}, true},
		{"same start and end", entity.Preferences{WorkStart: "12:00", WorkEnd: "12:00", Preference: 0}, true},
		{"not zero padded", entity.Preferences{WorkStart: "8:00", WorkEnd: "19:00", Preference: 0.5}, false},
		{"hour out of range", entity.Preferences{WorkStart: "08:00", WorkEnd: "24:00", Preference: 0.5}, false},
		{"minute out of range", entity.Preferences{WorkStart: "08:60", WorkEnd: "19:00", Preference: 0.5}, false},
		{"wraps midnight", entity.Preferences{WorkStart: "22:00", WorkEnd: "06:00", Preference: 0.5}, false},
		{"preference below zero", entity.Preferences{WorkStart: "08:00", WorkEnd: "19:00", Preference: -0.1}, false},
		{"preference above one", entity.Preferences{WorkStart: "08:00", WorkEnd: "19:00", Preference: 1.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePreferences(tt.preferences)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPreferences)
			}
		})
	}
}

func TestDescribePreference(t *testing.T) {
	assert.Contains(t, DescribePreference(0), "Safety")
	assert.Contains(t, DescribePreference(0.29), "Safety")
	assert.Contains(t, DescribePreference(0.3), "Balanced")
	assert.Contains(t, DescribePreference(0.7), "Balanced")
	assert.Contains(t, DescribePreference(0.71), "Speed")
}

func TestGetPreferencesDefaultsWhenMissing(t *testing.T) {
	uc := NewSettingsUseCase(newFakeSettingsGateway(), nil)

	preferences, err := uc.GetPreferences(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), preferences)
}

func TestSaveAndResetPreferences(t *testing.T) {
	gateway := newFakeSettingsGateway()
	uc := NewSettingsUseCase(gateway, nil)
	ctx := context.Background()

	custom := entity.Preferences{WorkStart: "09:30", WorkEnd: "17:00", Preference: 0.8}
	saved, err := uc.SavePreferences(ctx, "alice", custom)
	require.NoError(t, err)
	assert.Equal(t, custom, saved)

	loaded, err := uc.GetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, custom, loaded)

	reset, err := uc.ResetPreferences(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPreferences(), reset)
	assert.Equal(t, entity.DefaultPreferences(), gateway.preferences["alice"])
}

func TestSavePreferencesRejectsInvalid(t *testing.T) {
	gateway := newFakeSettingsGateway()
	uc := NewSettingsUseCase(gateway, nil)

	_, err := uc.SavePreferences(context.Background(), "alice", entity.Preferences{WorkStart: "19:00", WorkEnd: "08:00", Preference: 0.5})

	assert.ErrorIs(t, err, ErrInvalidPreferences)
	assert.Empty(t, gateway.preferences)
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	gateway := newFakeSettingsGateway()
	gateway.err = errors.New("connection refused")
	uc := NewSettingsUseCase(gateway, nil)
	ctx := context.Background()

	_, err := uc.GetPreferences(ctx, "alice")
	assert.ErrorIs(t, err, gateway.err)

	_, err = uc.GetLocation(ctx, "alice")
	assert.ErrorIs(t, err, gateway.err)

	_, err = uc.SavePreferences(ctx, "alice", entity.DefaultPreferences())
	assert.ErrorIs(t, err, gateway.err)
}

func TestResolveLocationWithoutCoordinates(t *testing.T) {
	gateway := newFakeSettingsGateway()
	geocoder := &fakeGeocoder{address: "somewhere"}
	uc := NewSettingsUseCase(gateway, geocoder)

	location, err := uc.ResolveLocation(context.Background(), "alice", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLocation(), location)
	assert.True(t, location.IsDefault)
	assert.Empty(t, gateway.locations)
	assert.Zero(t, geocoder.calls)
}

func TestResolveLocationGeocodes(t *testing.T) {
	gateway := newFakeSettingsGateway()
	uc := NewSettingsUseCase(gateway, &fakeGeocoder{address: "Guangdong Shenzhen Futian"})
	lat, lon := coords(22.54, 114.05)

	location, err := uc.ResolveLocation(context.Background(), "alice", lat, lon)

	require.NoError(t, err)
	assert.Equal(t, "Guangdong Shenzhen Futian", location.Address)
	assert.False(t, location.IsDefault)
	assert.Equal(t, location, gateway.locations["alice"])

	stored, err := uc.GetLocation(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, location, stored)
}

func TestResolveLocationGeocoderFailure(t *testing.T) {
	lat, lon := coords(22.54, 114.05)

	for _, geocoder := range []*fakeGeocoder{
		{err: errors.New("timeout")},
		{address: ""},
	} {
		uc := NewSettingsUseCase(newFakeSettingsGateway(), geocoder)
		location, err := uc.ResolveLocation(context.Background(), "alice", lat, lon)

		require.NoError(t, err)
		assert.Equal(t, FallbackAddress, location.Address)
		assert.Equal(t, 22.54, location.Lat)
	}

	uc := NewSettingsUseCase(newFakeSettingsGateway(), nil)
	location, err := uc.ResolveLocation(context.Background(), "alice", lat, lon)
	require.NoError(t, err)
	assert.Equal(t, FallbackAddress, location.Address)
}

func TestResolveLocationRejectsInvalidCoordinates(t *testing.T) {
	gateway := newFakeSettingsGateway()
	uc := NewSettingsUseCase(gateway, nil)
	lat, lon := coords(91, 10)

	_, err := uc.ResolveLocation(context.Background(), "alice", lat, lon)
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = uc.ResolveLocation(context.Background(), "alice", lat, nil)
	assert.ErrorIs(t, err, ErrInvalidLocation)
	assert.Empty(t, gateway.locations)
}

func TestGetLocationDefaultsWhenMissing(t *testing.T) {
	uc := NewSettingsUseCase(newFakeSettingsGateway(), nil)

	location, err := uc.GetLocation(context.Background(), "bob")

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultLocation(), location)
}
