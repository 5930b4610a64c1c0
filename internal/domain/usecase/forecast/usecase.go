package forecast

import (
	"context"

	"skydry-api/internal/domain/entity"
	"skydry-api/internal/domain/model"
)

// Query selects whose forecast to compute. Nil fields fall back to the stored settings.
type Query struct {
	ProfileID  string
	Lat        *float64
	Lon        *float64
	WorkStart  *string
	WorkEnd    *string
	Preference *float64
}

type UseCase interface {
	// FetchWeather returns the provider payload, or a synthetic one when the provider fails
	FetchWeather(ctx context.Context, lat, lon float64) *entity.WeatherPayload

	// GetForecast resolves settings and location, fetches weather and aggregates it per day
	GetForecast(ctx context.Context, query Query) (*model.ForecastResponse, error)

	// Report renders the forecast of the query as plain text
	Report(ctx context.Context, query Query) (string, error)

	// History returns the stored daily summaries of a profile from fromDate on
	History(ctx context.Context, profileID string, fromDate string) ([]entity.ForecastRecord, error)

	// RefreshProfile recomputes the forecast with the stored settings and stores its summary
	RefreshProfile(ctx context.Context, profileID string) error

	// EnqueueRefreshAll sends one refresh message per known profile
	EnqueueRefreshAll(ctx context.Context, requestID string) error
}
