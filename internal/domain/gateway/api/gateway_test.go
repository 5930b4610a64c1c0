package api

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/http"
)

const forecastBody = `{
  "latitude": 22.5,
  "longitude": 114.0,
  "timezone": "Asia/Hong_Kong",
  "hourly": {
    "time": ["2026-10-19T00:00", "2026-10-19T01:00"],
    "temperature_2m": [24.1, null],
    "relative_humidity_2m": [70, 72],
    "wind_speed_10m": [8.2, 9.1],
    "cloud_cover": [40, 45],
    "precipitation": [0, 0],
    "vapour_pressure_deficit": [0.9, 0.8],
    "precipitation_probability": [5, 10]
  },
  "daily": {
    "time": ["2026-10-19"],
    "temperature_2m_max": [28.3],
    "temperature_2m_min": [22.0],
    "wind_speed_10m_max": [15.0],
    "wind_speed_10m_min": [3.0],
    "precipitation_sum": [0.0]
  }
}`

func TestWeatherGatewayGetForecast(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "22.5229", query.Get("latitude"))
		assert.Equal(t, "114.0545", query.Get("longitude"))
		assert.Equal(t, "temperature_2m,relative_humidity_2m,wind_speed_10m,cloud_cover,precipitation,vapour_pressure_deficit,precipitation_probability", query.Get("hourly"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,wind_speed_10m_max,wind_speed_10m_min,precipitation_sum", query.Get("daily"))
		assert.Equal(t, "auto", query.Get("timezone"))
		assert.Equal(t, "5", query.Get("forecast_days"))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	gateway := NewWeatherGateway(WeatherGatewayConfig{BaseURL: server.URL}, http.ClientOptions{})
	payload, err := gateway.GetForecast(context.Background(), 22.5229, 114.0545)
	require.NoError(t, err)

	assert.Equal(t, entity.SourceLive, payload.Source)
	assert.Equal(t, "Asia/Hong_Kong", payload.Timezone)
	assert.Equal(t, []string{"2026-10-19"}, payload.Daily.Time)
	require.Len(t, payload.Hourly.Temperature, 2)
	assert.Equal(t, 24.1, *payload.Hourly.Temperature[0])
	assert.Nil(t, payload.Hourly.Temperature[1])
}

func TestWeatherGatewayErrors(t *testing.T) {
	cases := map[string]nethttp.HandlerFunc{
		"server error": func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		},
		"provider reason": func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(nethttp.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":true,"reason":"Latitude must be in range of -90 to 90°."}`))
		},
		"missing daily": func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"hourly":{"time":[]}}`))
		},
		"malformed body": func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"hourly":`))
		},
		"timeout": func(w nethttp.ResponseWriter, r *nethttp.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(handler)
			defer server.Close()

			gateway := NewWeatherGateway(WeatherGatewayConfig{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, http.ClientOptions{})
			payload, err := gateway.GetForecast(context.Background(), 1, 2)
			assert.Error(t, err)
			assert.Nil(t, payload)
		})
	}
}

type countingWeatherGateway struct {
	calls int32
}

func (c *countingWeatherGateway) GetForecast(context.Context, float64, float64) (*entity.WeatherPayload, error) {
	atomic.AddInt32(&c.calls, 1)
	return &entity.WeatherPayload{}, nil
}

func TestRateLimitedWeatherGateway(t *testing.T) {
	inner := &countingWeatherGateway{}
	assert.Same(t, WeatherGateway(inner), NewRateLimitedWeatherGateway(inner, 0, 1))

	limited := NewRateLimitedWeatherGateway(inner, 0.001, 1)
	_, err := limited.GetForecast(context.Background(), 0, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = limited.GetForecast(ctx, 0, 0)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&inner.calls))
}

func TestGeocoderGatewayReverseGeocode(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "/ws/geocoder/v1/", r.URL.Path)
		assert.Equal(t, "22.5,114.05", r.URL.Query().Get("location"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "json", r.URL.Query().Get("output"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":0,"message":"query ok","result":{"address":"fallback","address_component":{"province":"Guangdong","city":"Shenzhen","district":"Futian","street":"Shennan Blvd","street_number":"1"}}}`))
	}))
	defer server.Close()

	gateway := NewGeocoderGateway(GeocoderGatewayConfig{BaseURL: server.URL, Key: "secret"}, http.ClientOptions{})
	address, err := gateway.ReverseGeocode(context.Background(), 22.5, 114.05)
	require.NoError(t, err)
	assert.Equal(t, "GuangdongShenzhenFutianShennan Blvd1", address)
}

func TestGeocoderGatewayFailures(t *testing.T) {
	gateway := NewGeocoderGateway(GeocoderGatewayConfig{BaseURL: "http://127.0.0.1:1"}, http.ClientOptions{})
	_, err := gateway.ReverseGeocode(context.Background(), 1, 2)
	assert.True(t, errors.Is(err, ErrGeocoderNotConfigured))

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":311,"message":"key format error"}`))
	}))
	defer server.Close()

	gateway = NewGeocoderGateway(GeocoderGatewayConfig{BaseURL: server.URL, Key: "bad"}, http.ClientOptions{})
	_, err = gateway.ReverseGeocode(context.Background(), 1, 2)
	assert.ErrorContains(t, err, "311")
}
