package entity

import "time"

// ForecastRecord is the stored summary of one forecast day for a profile.
type ForecastRecord struct {
	ID             string        `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID      string        `json:"profileId" gorm:"not null;uniqueIndex:idx_forecast_history_profile_day"`
	Day            string        `json:"day" gorm:"size:10;not null;uniqueIndex:idx_forecast_history_profile_day"`
	DryingIndex    float64       `json:"dryingIndex"`
	Recommendation string        `json:"recommendation"`
	Color          Color         `json:"color"`
	RainAlert      bool          `json:"rainAlert"`
	MinTemp        float64       `json:"minTemp"`
	MaxTemp        float64       `json:"maxTemp"`
	AvgHumidity    float64       `json:"avgHumidity"`
	MaxRainProb    float64       `json:"maxRainProb"`
	Source         WeatherSource `json:"source"`
	CreatedAt      time.Time     `json:"createdDate"`
	UpdatedAt      time.Time     `json:"updatedDate"`
}

func (ForecastRecord) TableName() string {
	return "forecast_history"
}
