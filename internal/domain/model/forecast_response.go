package model

import "skydry-api/internal/domain/entity"

// ForecastResponse is the forecast of a profile together with the settings it was computed with
type ForecastResponse struct {
	Location       entity.Location      `json:"location"`
	Preferences    entity.Preferences   `json:"preferences"`
	PreferenceMode string               `json:"preferenceMode"`
	Source         entity.WeatherSource `json:"source"`
	Timezone       string               `json:"timezone"`
	Today          string               `json:"today"`
	Forecasts      []entity.DayForecast `json:"forecasts"`
}
