package api

import (
	"context"

	"skydry-api/internal/domain/entity"
)

// WeatherGateway fetches multi-day forecasts from the weather provider
type WeatherGateway interface {
	// GetForecast requests hourly and daily series for the coordinate.
	// Any failure is returned as an error; callers decide on fallbacks.
	GetForecast(ctx context.Context, lat, lon float64) (*entity.WeatherPayload, error)
}
