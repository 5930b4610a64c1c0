package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"skydry-api/internal/domain/model/external"
	"skydry-api/pkg/http"
)

// ErrGeocoderNotConfigured is returned when no API key is available
var ErrGeocoderNotConfigured = errors.New("geocoder key not configured")

// GeocoderGatewayConfig holds the Tencent Maps endpoint settings
type GeocoderGatewayConfig struct {
	BaseURL string
	Path    string
	Key     string
	Timeout time.Duration
}

// tencentGeocoderGateway implements GeocoderGateway with the Tencent Maps web service
type tencentGeocoderGateway struct {
	httpClient *http.Client
	path       string
	key        string
	timeout    time.Duration
}

func NewGeocoderGateway(config GeocoderGatewayConfig, clientOptions http.ClientOptions) GeocoderGateway {
	if config.Path == "" {
		config.Path = "/ws/geocoder/v1/"
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	clientOptions.ReadTimeout = config.Timeout

	return &tencentGeocoderGateway{
		httpClient: http.NewHttpClient(config.BaseURL, clientOptions),
		path:       config.Path,
		key:        config.Key,
		timeout:    config.Timeout,
	}
}

func (g *tencentGeocoderGateway) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	if g.key == "" {
		return "", ErrGeocoderNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	successResp, _, _, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(g.path).
		WithQueryParams(map[string]string{
			"location": strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64),
			"key":      g.key,
			"output":   "json",
		}).
		WithSuccessResp(&external.TencentGeocoderResponse{}).
		Execute()
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}

	response := successResp.(*external.TencentGeocoderResponse)
	if response.Status != 0 {
		return "", fmt.Errorf("reverse geocoding failed with status %d: %s", response.Status, response.Message)
	}
	if response.Result == nil {
		return "", errors.New("reverse geocoding returned no result")
	}

	address := response.Result.AddressComponent.FullAddress()
	if address == "" {
		address = response.Result.Address
	}
	if address == "" {
		return "", errors.New("reverse geocoding returned an empty address")
	}
	return address, nil
}
