package external

import (
	"errors"

	"skydry-api/internal/domain/entity"
)

// ErrIncompleteForecast is returned when the provider answers without the hourly or daily block.
var ErrIncompleteForecast = errors.New("forecast response missing hourly or daily data")

// OpenMeteoForecastResponse represents the response from the /v1/forecast API
type OpenMeteoForecastResponse struct {
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Timezone  string               `json:"timezone"`
	Hourly    *entity.HourlySeries `json:"hourly"`
	Daily     *entity.DailySeries  `json:"daily"`
}

// OpenMeteoErrorResponse is returned by the API with a 4xx status
type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// ToPayload converts the response into a live weather payload.
func (r *OpenMeteoForecastResponse) ToPayload() (*entity.WeatherPayload, error) {
	if r == nil || r.Hourly == nil || r.Daily == nil {
		return nil, ErrIncompleteForecast
	}
	return &entity.WeatherPayload{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timezone:  r.Timezone,
		Source:    entity.SourceLive,
		Hourly:    *r.Hourly,
		Daily:     *r.Daily,
	}, nil
}
