package forecast

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"skydry-api/internal/domain/entity"
)

const (
	forecastDays = 5
	hoursPerDay  = 24
)

// MockWeather synthesizes a plausible payload for the coordinate, dated in UTC.
// Temperatures follow the month of each day and the latitude; the remaining
// metrics are random.
func MockWeather(lat, lon float64, now time.Time, rng *rand.Rand) *entity.WeatherPayload {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(now.UnixNano()), math.Float64bits(lat)^math.Float64bits(lon)))
	}

	now = now.UTC()
	payload := &entity.WeatherPayload{
		Latitude:  lat,
		Longitude: lon,
		Timezone:  time.UTC.String(),
		Source:    entity.SourceMock,
	}

	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for d := 0; d < forecastDays; d++ {
		day := start.AddDate(0, 0, d)
		date := day.Format(time.DateOnly)
		baseTemp := seasonalBaseTemp(day.Month(), lat)

		maxTemp := baseTemp + rng.Float64()*8 + 2
		minTemp := baseTemp - rng.Float64()*8 - 2
		daily := &payload.Daily
		daily.Time = append(daily.Time, date)
		daily.TemperatureMax = append(daily.TemperatureMax, ptr(maxTemp))
		daily.TemperatureMin = append(daily.TemperatureMin, ptr(minTemp))
		daily.WindSpeedMax = append(daily.WindSpeedMax, ptr(rng.Float64()*10+5))
		daily.WindSpeedMin = append(daily.WindSpeedMin, ptr(rng.Float64()*5+2))
		daily.PrecipitationSum = append(daily.PrecipitationSum, ptr(rng.Float64()*5))

		avgTemp := (maxTemp + minTemp) / 2
		hourly := &payload.Hourly
		for h := 0; h < hoursPerDay; h++ {
			hourly.Time = append(hourly.Time, fmt.Sprintf("%sT%02d:00", date, h))
			hourly.Temperature = append(hourly.Temperature, ptr(avgTemp+math.Sin(float64(h)/hoursPerDay*2*math.Pi)*8))
			hourly.RelativeHumidity = append(hourly.RelativeHumidity, ptr(50+rng.Float64()*30))
			hourly.WindSpeed = append(hourly.WindSpeed, ptr(rng.Float64()*8+2))
			hourly.CloudCover = append(hourly.CloudCover, ptr(rng.Float64()*100))
			hourly.Precipitation = append(hourly.Precipitation, ptr(rng.Float64()*2))
			hourly.VapourPressureDeficit = append(hourly.VapourPressureDeficit, ptr(rng.Float64()*2+0.5))
			hourly.PrecipitationProbability = append(hourly.PrecipitationProbability, ptr(rng.Float64()*50))
		}
	}

	return payload
}

func seasonalBaseTemp(month time.Month, lat float64) float64 {
	var base float64
	switch {
	case month >= time.March && month <= time.May:
		base = 18
	case month >= time.June && month <= time.August:
		base = 28
	case month >= time.September && month <= time.November:
		base = 15
	default:
		base = 5
	}

	if lat > 30 {
		base -= 5
	} else if lat < 20 {
		base += 5
	}
	return base
}

func ptr(v float64) *float64 {
	return &v
}
