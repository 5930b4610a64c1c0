package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"skydry-api/internal/domain/entity"
	"skydry-api/internal/domain/model/external"
	"skydry-api/pkg/http"
)

var (
	hourlyFields = []string{
		"temperature_2m",
		"relative_humidity_2m",
		"wind_speed_10m",
		"cloud_cover",
		"precipitation",
		"vapour_pressure_deficit",
		"precipitation_probability",
	}
	dailyFields = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"wind_speed_10m_max",
		"wind_speed_10m_min",
		"precipitation_sum",
	}
)

// WeatherGatewayConfig holds the Open-Meteo endpoint settings
type WeatherGatewayConfig struct {
	BaseURL      string
	Path         string
	ForecastDays int
	Timeout      time.Duration
}

// weatherGatewayImpl implements the WeatherGateway interface against Open-Meteo
type weatherGatewayImpl struct {
	httpClient   *http.Client
	path         string
	forecastDays int
	timeout      time.Duration
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig, clientOptions http.ClientOptions) WeatherGateway {
	if config.Path == "" {
		config.Path = "/v1/forecast"
	}
	if config.ForecastDays <= 0 {
		config.ForecastDays = 5
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	clientOptions.ReadTimeout = config.Timeout

	return &weatherGatewayImpl{
		httpClient:   http.NewHttpClient(config.BaseURL, clientOptions),
		path:         config.Path,
		forecastDays: config.ForecastDays,
		timeout:      config.Timeout,
	}
}

// GetForecast performs a single request without retries
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, lat, lon float64) (*entity.WeatherPayload, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(w.path).
		WithQueryParams(map[string]string{
			"latitude":      strconv.FormatFloat(lat, 'f', -1, 64),
			"longitude":     strconv.FormatFloat(lon, 'f', -1, 64),
			"hourly":        strings.Join(hourlyFields, ","),
			"daily":         strings.Join(dailyFields, ","),
			"timezone":      "auto",
			"forecast_days": strconv.Itoa(w.forecastDays),
		}).
		WithSuccessResp(&external.OpenMeteoForecastResponse{}).
		WithErrorResp(&external.OpenMeteoErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if reason := errResp.(*external.OpenMeteoErrorResponse).Reason; reason != "" {
				return nil, fmt.Errorf("weather provider returned %d: %s: %w", status, reason, err)
			}
		}
		return nil, fmt.Errorf("weather provider request failed: %w", err)
	}

	response, ok := successResp.(*external.OpenMeteoForecastResponse)
	if !ok {
		return nil, external.ErrIncompleteForecast
	}
	return response.ToPayload()
}
