package forecast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydry-api/internal/domain/entity"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)
	forecasts := []entity.DayForecast{
		{Date: "2026-10-19", DryingIndex: 72.4, Recommendation: entity.RecommendationFast, MinTemp: 18.4, MaxTemp: 27.6, AvgHumidity: 45.5, MaxRainProb: 12},
		{Date: "2026-10-20", DryingIndex: 10, Recommendation: entity.RecommendationRain, MinTemp: 17, MaxTemp: 21, AvgHumidity: 80, MaxRainProb: 75, RainAlert: true},
	}

	report, err := BuildReport(entity.Location{Address: "Shenzhen"}, forecasts, now)
	require.NoError(t, err)

	lines := strings.Split(report, "\n")
	assert.Equal(t, reportTitle, lines[0])
	assert.Equal(t, strings.Repeat("=", 40), lines[1])
	assert.Contains(t, report, "Generated at: 2026-10-19 09:30:00\n")
	assert.Contains(t, report, "Location: Shenzhen\n")
	assert.Contains(t, report, "Mon, Oct 19 (today)\n  Drying index: 72/100\n  Recommendation: suitable – dries fast\n  Temperature: 18°C - 28°C\n  Humidity: 46%\n  Rain probability: 12%\n\n")
	assert.Contains(t, report, "Tue, Oct 20 (tomorrow)\n")
	assert.Contains(t, report, "  Rain probability: 75%\n  ⚠️ Rain risk during work hours\n")
	assert.Equal(t, 1, strings.Count(report, "Rain risk"))
}

func TestBuildReportEmpty(t *testing.T) {
	_, err := BuildReport(entity.DefaultLocation(), nil, time.Now())
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2026, time.October, 19, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "Mon, Oct 19 (today)", FormatDate("2026-10-19", now))
	assert.Equal(t, "Tue, Oct 20 (tomorrow)", FormatDate("2026-10-20", now))
	assert.Equal(t, "Wed, Oct 21", FormatDate("2026-10-21", now))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date", now))
}

func TestWorkHoursRange(t *testing.T) {
	day := entity.DayForecast{WorkHoursData: []entity.HourlySample{
		{Temperature: f(21.26), RelativeHumidity: f(55)},
		{Temperature: f(25.04), RelativeHumidity: nil},
		{Temperature: f(19.5), RelativeHumidity: f(61.6)},
	}}

	temperature, humidity := WorkHoursRange(day)
	assert.Equal(t, "19.5-25.0°C", temperature)
	assert.Equal(t, "55-62%", humidity)
}
