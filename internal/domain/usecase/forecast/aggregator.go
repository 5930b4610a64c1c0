package forecast

import (
	"math"
	"strings"

	"skydry-api/internal/domain/entity"
	"skydry-api/pkg/util/numberutils"
)

const (
	defaultMaxTemp       = 20.0
	defaultMinTemp       = 20.0
	defaultMaxWind       = 10.0
	defaultMinWind       = 5.0
	defaultPrecipitation = 0.0
	defaultHumidity      = 50.0
	defaultCloudCover    = 50.0
	defaultVpd           = 1.0

	rainAlertProbability = 50.0
	fastDryingIndex      = 60.0
	slowDryingIndex      = 30.0
)

// ComputeDryingIndex scores drying conditions in [0, 100]. A higher preference
// raises the weight of wind and vapour pressure deficit and lowers the penalty
// for humidity and cloud cover. Inputs must be finite.
func ComputeDryingIndex(avgTemp, avgWind, avgVpd, avgHumidity, avgCloud, preference float64) float64 {
	safetyWeight := 1 - preference
	speedWeight := preference

	index := avgTemp*1.0 +
		avgWind*(1.5+0.5*speedWeight) +
		avgVpd*(1.0+0.5*speedWeight) -
		avgHumidity*(0.5+0.5*safetyWeight) -
		avgCloud*(0.3+0.2*safetyWeight)

	return numberutils.Clamp(index, 0, 100)
}

// BuildDailyForecasts aggregates the payload into one DayForecast per entry of
// the daily time array, in the same order. Work hours are compared as
// zero-padded "HH:MM" strings, so the window cannot wrap past midnight.
// The payload is not modified.
func BuildDailyForecasts(payload *entity.WeatherPayload, workStart, workEnd string, preference float64) []entity.DayForecast {
	if payload == nil {
		return []entity.DayForecast{}
	}

	hourly := collectHourlySamples(&payload.Hourly)
	daily := &payload.Daily

	forecasts := make([]entity.DayForecast, 0, len(daily.Time))
	for i, date := range daily.Time {
		maxTemp := valueAt(daily.TemperatureMax, i, defaultMaxTemp)
		minTemp := valueAt(daily.TemperatureMin, i, defaultMinTemp)
		maxWind := valueAt(daily.WindSpeedMax, i, defaultMaxWind)
		minWind := valueAt(daily.WindSpeedMin, i, defaultMinWind)
		totalPrecipitation := valueAt(daily.PrecipitationSum, i, defaultPrecipitation)

		dayHours := make([]entity.HourlySample, 0, 24)
		workHours := make([]entity.HourlySample, 0, 12)
		for _, sample := range hourly {
			if !strings.HasPrefix(sample.Time, date) {
				continue
			}
			dayHours = append(dayHours, sample)
			if hm := clockOf(sample.Time); hm >= workStart && hm <= workEnd {
				workHours = append(workHours, sample)
			}
		}

		avgTemp := average(dayHours, func(s entity.HourlySample) *float64 { return s.Temperature }, (maxTemp+minTemp)/2)
		avgHumidity := average(dayHours, func(s entity.HourlySample) *float64 { return s.RelativeHumidity }, defaultHumidity)
		avgWind := average(dayHours, func(s entity.HourlySample) *float64 { return s.WindSpeed }, (maxWind+minWind)/2)
		avgCloud := average(dayHours, func(s entity.HourlySample) *float64 { return s.CloudCover }, defaultCloudCover)
		avgVpd := average(dayHours, func(s entity.HourlySample) *float64 { return s.VapourPressureDeficit }, defaultVpd)

		rainAlert := false
		maxRainProb := 0.0
		for _, sample := range workHours {
			probability := numeric(sample.PrecipitationProbability, 0)
			if probability > rainAlertProbability {
				rainAlert = true
			}
			maxRainProb = math.Max(maxRainProb, probability)
		}

		dryingIndex := ComputeDryingIndex(avgTemp, avgWind, avgVpd, avgHumidity, avgCloud, preference)
		recommendation, color := recommend(rainAlert, totalPrecipitation, dryingIndex)

		day := entity.DayForecast{
			Date:               date,
			MaxTemp:            maxTemp,
			MinTemp:            minTemp,
			AvgTemp:            avgTemp,
			AvgHumidity:        avgHumidity,
			AvgWind:            avgWind,
			AvgCloud:           avgCloud,
			AvgVpd:             avgVpd,
			MaxRainProb:        maxRainProb,
			TotalPrecipitation: totalPrecipitation,
			DryingIndex:        dryingIndex,
			Recommendation:     recommendation,
			Color:              color,
			RainAlert:          rainAlert,
			HourlyData:         dayHours,
			WorkHoursData:      workHours,
		}
		day.Display = FormatDisplay(day)
		forecasts = append(forecasts, day)
	}

	return forecasts
}

func recommend(rainAlert bool, totalPrecipitation, dryingIndex float64) (string, entity.Color) {
	switch {
	case rainAlert || totalPrecipitation > 0:
		return entity.RecommendationRain, entity.ColorRed
	case dryingIndex >= fastDryingIndex:
		return entity.RecommendationFast, entity.ColorGreen
	case dryingIndex >= slowDryingIndex:
		return entity.RecommendationSlow, entity.ColorOrange
	default:
		return entity.RecommendationUnsuitable, entity.ColorRed
	}
}

// collectHourlySamples zips the parallel hourly arrays. Missing trailing
// values become nil samples rather than shifting the alignment.
func collectHourlySamples(series *entity.HourlySeries) []entity.HourlySample {
	samples := make([]entity.HourlySample, len(series.Time))
	for i, t := range series.Time {
		samples[i] = entity.HourlySample{
			Time:                     t,
			Temperature:              pointerAt(series.Temperature, i),
			RelativeHumidity:         pointerAt(series.RelativeHumidity, i),
			WindSpeed:                pointerAt(series.WindSpeed, i),
			CloudCover:               pointerAt(series.CloudCover, i),
			Precipitation:            pointerAt(series.Precipitation, i),
			VapourPressureDeficit:    pointerAt(series.VapourPressureDeficit, i),
			PrecipitationProbability: pointerAt(series.PrecipitationProbability, i),
		}
	}
	return samples
}

// clockOf returns the "HH:MM" part of a "YYYY-MM-DDTHH:MM" timestamp.
func clockOf(timestamp string) string {
	if len(timestamp) <= 11 {
		return ""
	}
	return timestamp[11:min(16, len(timestamp))]
}

// pointerAt copies the value so samples never alias the payload.
func pointerAt(values []*float64, i int) *float64 {
	if i >= len(values) || values[i] == nil {
		return nil
	}
	v := *values[i]
	return &v
}

func valueAt(values []*float64, i int, fallback float64) float64 {
	if i >= len(values) {
		return fallback
	}
	return numeric(values[i], fallback)
}

func numeric(v *float64, fallback float64) float64 {
	if v == nil || !numberutils.IsFinite(*v) {
		return fallback
	}
	return *v
}

func average(samples []entity.HourlySample, field func(entity.HourlySample) *float64, fallback float64) float64 {
	sum, count := 0.0, 0
	for _, sample := range samples {
		if v := field(sample); v != nil && numberutils.IsFinite(*v) {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return fallback
	}
	return sum / float64(count)
}
