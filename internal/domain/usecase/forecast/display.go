package forecast

import (
	"fmt"
	"strconv"
	"time"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/util/numberutils"
)

const missingValue = "--"

// FormatDisplay renders the user-facing strings of a day.
func FormatDisplay(day entity.DayForecast) entity.ForecastDisplay {
	workTemp, workHumidity := WorkHoursRange(day)
	return entity.ForecastDisplay{
		MaxTemp:            formatFixed(day.MaxTemp, 1, missingValue),
		MinTemp:            formatFixed(day.MinTemp, 1, missingValue),
		AvgTemp:            formatFixed(day.AvgTemp, 1, missingValue),
		AvgHumidity:        formatFixed(day.AvgHumidity, 0, missingValue),
		AvgWind:            formatFixed(day.AvgWind, 1, missingValue),
		AvgCloud:           formatFixed(day.AvgCloud, 0, missingValue),
		AvgVpd:             formatFixed(day.AvgVpd, 1, missingValue),
		MaxRainProb:        formatFixed(day.MaxRainProb, 0, "0"),
		TotalPrecipitation: formatFixed(day.TotalPrecipitation, 1, "0.0"),
		DryingIndex:        formatFixed(day.DryingIndex, 0, "0"),
		WorkHoursTemp:      workTemp,
		WorkHoursHumidity:  workHumidity,
	}
}

// formatFixed rounds half away from zero before formatting so that
// 2.45 renders as "2.5" and 40.5 as "41".
func formatFixed(v float64, decimals int, placeholder string) string {
	if !numberutils.IsFinite(v) {
		return placeholder
	}
	rounded := numberutils.Round(v, decimals)
	if rounded == 0 {
		// avoid "-0.0"
		rounded = 0
	}
	return strconv.FormatFloat(rounded, 'f', decimals, 64)
}

// FormatDate renders "2006-01-02" as "Mon, Jan 2" with a relative marker for
// today and tomorrow. Unparseable dates are returned unchanged.
func FormatDate(date string, now time.Time) string {
	day, err := time.ParseInLocation(time.DateOnly, date, now.Location())
	if err != nil {
		return date
	}

	label := day.Format("Mon, Jan 2")
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case day.Equal(today):
		label += " (today)"
	case day.Equal(today.AddDate(0, 0, 1)):
		label += " (tomorrow)"
	}
	return label
}

// WorkHoursRange summarizes the work-window temperature and humidity as "min-max" strings.
func WorkHoursRange(day entity.DayForecast) (temperature, humidity string) {
	temperature = rangeOf(day.WorkHoursData, func(s entity.HourlySample) *float64 { return s.Temperature }, 1, "°C")
	humidity = rangeOf(day.WorkHoursData, func(s entity.HourlySample) *float64 { return s.RelativeHumidity }, 0, "%")
	return temperature, humidity
}

func rangeOf(samples []entity.HourlySample, field func(entity.HourlySample) *float64, decimals int, unit string) string {
	lo, hi, found := 0.0, 0.0, false
	for _, sample := range samples {
		v := field(sample)
		if v == nil || !numberutils.IsFinite(*v) {
			continue
		}
		if !found || *v < lo {
			lo = *v
		}
		if !found || *v > hi {
			hi = *v
		}
		found = true
	}
	if !found {
		return missingValue
	}
	return fmt.Sprintf("%s-%s%s", formatFixed(lo, decimals, missingValue), formatFixed(hi, decimals, missingValue), unit)
}
