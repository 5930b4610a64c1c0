package forecast

import (
	"errors"
	"strings"
	"time"

	"skydry-api/internal/domain/entity"
)

// ErrNothingToExport is returned when a report is requested without forecast days.
var ErrNothingToExport = errors.New("no forecast data to export")

const reportTitle = "SkyDry - 5-day drying forecast summary"

// BuildReport renders the forecast as plain text for copying or sharing.
func BuildReport(location entity.Location, forecasts []entity.DayForecast, now time.Time) (string, error) {
	if len(forecasts) == 0 {
		return "", ErrNothingToExport
	}

	var sb strings.Builder
	sb.WriteString(reportTitle + "\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")
	sb.WriteString("Generated at: " + now.Format("2006-01-02 15:04:05") + "\n")
	if location.Address != "" {
		sb.WriteString("Location: " + location.Address + "\n")
	}
	sb.WriteString("\n")

	for _, day := range forecasts {
		sb.WriteString(FormatDate(day.Date, now) + "\n")
		sb.WriteString("  Drying index: " + formatFixed(day.DryingIndex, 0, "0") + "/100\n")
		sb.WriteString("  Recommendation: " + day.Recommendation + "\n")
		sb.WriteString("  Temperature: " + formatFixed(day.MinTemp, 0, missingValue) + "°C - " + formatFixed(day.MaxTemp, 0, missingValue) + "°C\n")
		sb.WriteString("  Humidity: " + formatFixed(day.AvgHumidity, 0, missingValue) + "%\n")
		sb.WriteString("  Rain probability: " + formatFixed(day.MaxRainProb, 0, "0") + "%\n")
		if day.RainAlert {
			sb.WriteString("  ⚠️ Rain risk during work hours\n")
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
