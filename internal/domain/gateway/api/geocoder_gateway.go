package api

import "context"

// GeocoderGateway resolves coordinates into a human readable address
type GeocoderGateway interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}
