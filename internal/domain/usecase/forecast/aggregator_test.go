package forecast

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydry-api/internal/domain/entity"
)

func f(v float64) *float64 {
	return &v
}

// dayPayload builds a payload with the given dates and 24 identical hours per date.
func dayPayload(dates []string, hour func(date string, h int) entity.HourlySample) *entity.WeatherPayload {
	payload := &entity.WeatherPayload{Source: entity.SourceLive}
	for _, date := range dates {
		payload.Daily.Time = append(payload.Daily.Time, date)
		payload.Daily.TemperatureMax = append(payload.Daily.TemperatureMax, f(30))
		payload.Daily.TemperatureMin = append(payload.Daily.TemperatureMin, f(20))
		payload.Daily.WindSpeedMax = append(payload.Daily.WindSpeedMax, f(12))
		payload.Daily.WindSpeedMin = append(payload.Daily.WindSpeedMin, f(4))
		payload.Daily.PrecipitationSum = append(payload.Daily.PrecipitationSum, f(0))
		for h := 0; h < 24; h++ {
			s := hour(date, h)
			s.Time = fmt.Sprintf("%sT%02d:00", date, h)
			payload.Hourly.Time = append(payload.Hourly.Time, s.Time)
			payload.Hourly.Temperature = append(payload.Hourly.Temperature, s.Temperature)
			payload.Hourly.RelativeHumidity = append(payload.Hourly.RelativeHumidity, s.RelativeHumidity)
			payload.Hourly.WindSpeed = append(payload.Hourly.WindSpeed, s.WindSpeed)
			payload.Hourly.CloudCover = append(payload.Hourly.CloudCover, s.CloudCover)
			payload.Hourly.Precipitation = append(payload.Hourly.Precipitation, s.Precipitation)
			payload.Hourly.VapourPressureDeficit = append(payload.Hourly.VapourPressureDeficit, s.VapourPressureDeficit)
			payload.Hourly.PrecipitationProbability = append(payload.Hourly.PrecipitationProbability, s.PrecipitationProbability)
		}
	}
	return payload
}

func dryHour(string, int) entity.HourlySample {
	return entity.HourlySample{
		Temperature:              f(30),
		RelativeHumidity:         f(20),
		WindSpeed:                f(30),
		CloudCover:               f(0),
		Precipitation:            f(0),
		VapourPressureDeficit:    f(3),
		PrecipitationProbability: f(10),
	}
}

func TestComputeDryingIndexExamples(t *testing.T) {
	assert.InDelta(t, 6.375, ComputeDryingIndex(25, 10, 1.5, 40, 20, 0.5), 1e-9)
	assert.Equal(t, 0.0, ComputeDryingIndex(25, 10, 1.5, 40, 20, 0))
	assert.Equal(t, 100.0, ComputeDryingIndex(60, 40, 4, 0, 0, 1))
}

func TestComputeDryingIndexIsClamped(t *testing.T) {
	for _, temp := range []float64{-30, 0, 25, 45} {
		for _, wind := range []float64{0, 15, 80} {
			for _, humidity := range []float64{0, 50, 100} {
				for _, cloud := range []float64{0, 50, 100} {
					for _, preference := range []float64{0, 0.3, 0.5, 1} {
						index := ComputeDryingIndex(temp, wind, 1.2, humidity, cloud, preference)
						assert.GreaterOrEqual(t, index, 0.0)
						assert.LessOrEqual(t, index, 100.0)
					}
				}
			}
		}
	}
}

func TestComputeDryingIndexMonotonicity(t *testing.T) {
	base := func(wind, vpd, humidity, cloud float64) float64 {
		return ComputeDryingIndex(20, wind, vpd, humidity, cloud, 0.5)
	}
	for step := 0.0; step < 20; step += 2.5 {
		assert.LessOrEqual(t, base(step, 1, 30, 10), base(step+2.5, 1, 30, 10), "wind")
		assert.LessOrEqual(t, base(10, step/5, 30, 10), base(10, step/5+0.5, 30, 10), "vpd")
		assert.GreaterOrEqual(t, base(10, 1, step, 10), base(10, 1, step+2.5, 10), "humidity")
		assert.GreaterOrEqual(t, base(10, 1, 30, step), base(10, 1, 30, step+2.5), "cloud")
	}
}

func TestPreferenceShiftsWeights(t *testing.T) {
	// unclamped region, one unit change of a single input isolates its weight
	weight := func(preference float64, dWind, dVpd, dHumidity, dCloud float64) float64 {
		origin := ComputeDryingIndex(50, 10, 1, 20, 10, preference)
		return ComputeDryingIndex(50, 10+dWind, 1+dVpd, 20+dHumidity, 10+dCloud, preference) - origin
	}

	assert.InDelta(t, 1.5, weight(0, 1, 0, 0, 0), 1e-9)
	assert.InDelta(t, 2.0, weight(1, 1, 0, 0, 0), 1e-9)
	assert.InDelta(t, 1.0, weight(0, 0, 1, 0, 0), 1e-9)
	assert.InDelta(t, 1.5, weight(1, 0, 1, 0, 0), 1e-9)
	assert.InDelta(t, -1.0, weight(0, 0, 0, 1, 0), 1e-9)
	assert.InDelta(t, -0.5, weight(1, 0, 0, 1, 0), 1e-9)
	assert.InDelta(t, -0.5, weight(0, 0, 0, 0, 1), 1e-9)
	assert.InDelta(t, -0.3, weight(1, 0, 0, 0, 1), 1e-9)

	assert.Greater(t, weight(0.6, 1, 0, 0, 0), weight(0.4, 1, 0, 0, 0))
	assert.Greater(t, weight(0.6, 0, 0, 1, 0), weight(0.4, 0, 0, 1, 0))
}

func TestBuildDailyForecastsLengthAndOrder(t *testing.T) {
	dates := []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23"}
	forecasts := BuildDailyForecasts(dayPayload(dates, dryHour), "08:00", "19:00", 0.5)

	require.Len(t, forecasts, len(dates))
	for i, day := range forecasts {
		assert.Equal(t, dates[i], day.Date)
		assert.Len(t, day.HourlyData, 24)
		assert.Len(t, day.WorkHoursData, 12)
	}
}

func TestBuildDailyForecastsNilAndEmpty(t *testing.T) {
	assert.Empty(t, BuildDailyForecasts(nil, "08:00", "19:00", 0.5))
	assert.Empty(t, BuildDailyForecasts(&entity.WeatherPayload{}, "08:00", "19:00", 0.5))
}

func TestBuildDailyForecastsAverages(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, func(_ string, h int) entity.HourlySample {
		s := dryHour("", h)
		s.Temperature = f(float64(h))
		if h%2 == 1 {
			s.RelativeHumidity = nil
		}
		return s
	})

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]

	assert.InDelta(t, 11.5, day.AvgTemp, 1e-9)
	assert.InDelta(t, 20, day.AvgHumidity, 1e-9)
	assert.InDelta(t, 30, day.AvgWind, 1e-9)
	assert.InDelta(t, 0, day.AvgCloud, 1e-9)
	assert.InDelta(t, 3, day.AvgVpd, 1e-9)
	assert.Equal(t, 30.0, day.MaxTemp)
	assert.Equal(t, 20.0, day.MinTemp)
}

func TestBuildDailyForecastsFallbacksWithoutHours(t *testing.T) {
	payload := &entity.WeatherPayload{
		Daily: entity.DailySeries{
			Time:             []string{"2026-10-19"},
			TemperatureMax:   []*float64{f(28)},
			TemperatureMin:   []*float64{f(18)},
			WindSpeedMax:     []*float64{f(14)},
			WindSpeedMin:     []*float64{f(6)},
			PrecipitationSum: []*float64{f(0)},
		},
	}

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]

	assert.Equal(t, 23.0, day.AvgTemp)
	assert.Equal(t, 50.0, day.AvgHumidity)
	assert.Equal(t, 10.0, day.AvgWind)
	assert.Equal(t, 50.0, day.AvgCloud)
	assert.Equal(t, 1.0, day.AvgVpd)
	assert.Equal(t, 0.0, day.MaxRainProb)
	assert.False(t, day.RainAlert)
	assert.Empty(t, day.HourlyData)
	assert.Empty(t, day.WorkHoursData)
}

func TestBuildDailyForecastsDailyDefaults(t *testing.T) {
	payload := &entity.WeatherPayload{
		Daily: entity.DailySeries{
			Time:           []string{"2026-10-19", "2026-10-20"},
			TemperatureMax: []*float64{nil},
			TemperatureMin: []*float64{f(math.NaN())},
		},
	}

	for _, day := range BuildDailyForecasts(payload, "08:00", "19:00", 0.5) {
		assert.Equal(t, 20.0, day.MaxTemp)
		assert.Equal(t, 20.0, day.MinTemp)
		assert.Equal(t, 20.0, day.AvgTemp)
		assert.Equal(t, 7.5, day.AvgWind)
		assert.Equal(t, 0.0, day.TotalPrecipitation)
	}
}

func TestBuildDailyForecastsIgnoresNaNSamples(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, func(_ string, h int) entity.HourlySample {
		s := dryHour("", h)
		if h < 12 {
			s.CloudCover = f(math.NaN())
		} else {
			s.CloudCover = f(40)
		}
		return s
	})

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]
	assert.Equal(t, 40.0, day.AvgCloud)
	assert.Equal(t, "40", day.Display.AvgCloud)
}

func TestRainAlertOnlyInsideWorkWindow(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, func(_ string, h int) entity.HourlySample {
		s := dryHour("", h)
		if h == 6 || h == 21 {
			s.PrecipitationProbability = f(90)
		}
		if h == 19 {
			s.PrecipitationProbability = f(50)
		}
		return s
	})

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]
	assert.False(t, day.RainAlert, "50% is not above the threshold and 06:00/21:00 are outside")
	assert.Equal(t, 50.0, day.MaxRainProb)
	assert.Equal(t, entity.RecommendationFast, day.Recommendation)

	day = BuildDailyForecasts(payload, "06:00", "19:00", 0.5)[0]
	assert.True(t, day.RainAlert)
	assert.Equal(t, 90.0, day.MaxRainProb)
	assert.Equal(t, entity.RecommendationRain, day.Recommendation)
	assert.Equal(t, entity.ColorRed, day.Color)
}

func TestWorkWindowIsInclusive(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, dryHour)

	day := BuildDailyForecasts(payload, "09:00", "09:00", 0.5)[0]
	require.Len(t, day.WorkHoursData, 1)
	assert.Equal(t, "2026-10-19T09:00", day.WorkHoursData[0].Time)

	day = BuildDailyForecasts(payload, "22:00", "06:00", 0.5)[0]
	assert.Empty(t, day.WorkHoursData)
}

func TestPrecipitationForcesRainRecommendation(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, dryHour)
	payload.Daily.PrecipitationSum[0] = f(0.1)

	day := BuildDailyForecasts(payload, "08:00", "19:00", 1)[0]
	assert.InDelta(t, 84.5, day.DryingIndex, 1e-9)
	assert.False(t, day.RainAlert)
	assert.Equal(t, entity.RecommendationRain, day.Recommendation)
	assert.Equal(t, entity.ColorRed, day.Color)
}

func TestRecommendationThresholds(t *testing.T) {
	cases := []struct {
		index          float64
		recommendation string
		color          entity.Color
	}{
		{60, entity.RecommendationFast, entity.ColorGreen},
		{59.99, entity.RecommendationSlow, entity.ColorOrange},
		{30, entity.RecommendationSlow, entity.ColorOrange},
		{29.99, entity.RecommendationUnsuitable, entity.ColorRed},
		{0, entity.RecommendationUnsuitable, entity.ColorRed},
	}
	for _, c := range cases {
		recommendation, color := recommend(false, 0, c.index)
		assert.Equal(t, c.recommendation, recommendation, c.index)
		assert.Equal(t, c.color, color, c.index)
	}
}

func TestExampleDayIsUnsuitable(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, func(string, int) entity.HourlySample {
		return entity.HourlySample{
			Temperature:              f(25),
			RelativeHumidity:         f(40),
			WindSpeed:                f(10),
			CloudCover:               f(20),
			VapourPressureDeficit:    f(1.5),
			PrecipitationProbability: f(0),
		}
	})

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]
	assert.InDelta(t, 6.375, day.DryingIndex, 1e-9)
	assert.Equal(t, "6", day.Display.DryingIndex)
	assert.Equal(t, entity.RecommendationUnsuitable, day.Recommendation)
	assert.Equal(t, entity.ColorRed, day.Color)
}

func TestBuildDailyForecastsDoesNotMutatePayload(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19", "2026-10-20"}, dryHour)
	before := *payload.Hourly.Temperature[3]
	timesBefore := append([]string(nil), payload.Hourly.Time...)

	forecasts := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)
	*forecasts[0].HourlyData[3].Temperature = -99

	assert.Equal(t, before, *payload.Hourly.Temperature[3])
	assert.Equal(t, timesBefore, payload.Hourly.Time)
}

func TestShortHourlyArraysKeepAlignment(t *testing.T) {
	payload := dayPayload([]string{"2026-10-19"}, dryHour)
	payload.Hourly.WindSpeed = payload.Hourly.WindSpeed[:6]

	day := BuildDailyForecasts(payload, "08:00", "19:00", 0.5)[0]
	assert.Equal(t, 30.0, day.AvgWind)
	assert.Nil(t, day.HourlyData[10].WindSpeed)
}

func TestDisplayRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.04, 12.35, -3.25, 99.95, 27.5} {
		one, err := strconv.ParseFloat(formatFixed(v, 1, missingValue), 64)
		require.NoError(t, err)
		assert.InDelta(t, v, one, 0.05+1e-9)

		zero, err := strconv.ParseFloat(formatFixed(v, 0, missingValue), 64)
		require.NoError(t, err)
		assert.InDelta(t, v, zero, 0.5+1e-9)
	}
}

func TestDisplayPlaceholders(t *testing.T) {
	day := entity.DayForecast{
		MaxTemp:            math.NaN(),
		AvgHumidity:        math.Inf(1),
		MaxRainProb:        math.NaN(),
		TotalPrecipitation: math.NaN(),
		DryingIndex:        math.NaN(),
		AvgVpd:             1.26,
		AvgWind:            -0.01,
	}

	display := FormatDisplay(day)
	assert.Equal(t, "--", display.MaxTemp)
	assert.Equal(t, "--", display.AvgHumidity)
	assert.Equal(t, "0", display.MaxRainProb)
	assert.Equal(t, "0.0", display.TotalPrecipitation)
	assert.Equal(t, "0", display.DryingIndex)
	assert.Equal(t, "1.3", display.AvgVpd)
	assert.Equal(t, "0.0", display.AvgWind)
	assert.Equal(t, "--", display.WorkHoursTemp)
}
