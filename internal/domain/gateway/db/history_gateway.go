package db

import (
	"context"

	"skydry-api/internal/domain/entity"
)

// HistoryGateway stores one forecast summary per profile and day
type HistoryGateway interface {
	// Upsert inserts the records or refreshes the existing row of the same profile and day
	Upsert(ctx context.Context, records []entity.ForecastRecord) error
	// FindByProfile returns the records of a profile from fromDate on, oldest first.
	// An empty fromDate returns every record.
	FindByProfile(ctx context.Context, profileID, fromDate string) ([]entity.ForecastRecord, error)
}
