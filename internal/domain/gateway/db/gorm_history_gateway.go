package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skydry-api/internal/domain/entity"
)

type GormHistoryGateway struct {
	DB *gorm.DB
}

var _ HistoryGateway = (*GormHistoryGateway)(nil)

func NewGormHistoryGateway(db *gorm.DB) *GormHistoryGateway {
	return &GormHistoryGateway{DB: db}
}

func (gateway *GormHistoryGateway) Upsert(ctx context.Context, records []entity.ForecastRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := uniqueByDay(records)
	for i := range rows {
		if rows[i].ID == "" {
			rows[i].ID = uuid.NewString()
		}
	}

	err := gateway.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "profile_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"drying_index", "recommendation", "color", "rain_alert",
				"min_temp", "max_temp", "avg_humidity", "max_rain_prob",
				"source", "updated_at",
			}),
		}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to upsert forecast history: %w", err)
	}
	return nil
}

func (gateway *GormHistoryGateway) FindByProfile(ctx context.Context, profileID, fromDate string) ([]entity.ForecastRecord, error) {
	query := gateway.DB.WithContext(ctx).Where("profile_id = ?", profileID)
	if fromDate != "" {
		query = query.Where("day >= ?", fromDate)
	}

	var records []entity.ForecastRecord
	if err := query.Order("day ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find forecast history of %s: %w", profileID, err)
	}
	return records, nil
}

// uniqueByDay keeps one record per (profile, day), the last one given, in
// first-seen order. Postgres rejects an upsert touching the same row twice.
func uniqueByDay(records []entity.ForecastRecord) []entity.ForecastRecord {
	type key struct{ profileID, day string }

	positions := make(map[key]int, len(records))
	rows := make([]entity.ForecastRecord, 0, len(records))
	for _, record := range records {
		k := key{record.ProfileID, record.Day}
		if i, ok := positions[k]; ok {
			rows[i] = record
			continue
		}
		positions[k] = len(rows)
		rows = append(rows, record)
	}
	return rows
}
