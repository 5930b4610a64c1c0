package forecast

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"skydry-api/internal/domain/entity"
	"skydry-api/internal/domain/gateway/api"
	"skydry-api/internal/domain/gateway/db"
	"skydry-api/internal/domain/gateway/queue"
	"skydry-api/internal/domain/model"
	"skydry-api/internal/domain/usecase/settings"
	"skydry-api/pkg/log"
)

var (
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrRefreshUnavailable = errors.New("refresh queue not configured")
)

const dateLayout = "2006-01-02"

// Config holds the refresh queue settings
type Config struct {
	QueueName string
	BatchSize int
}

type forecastUseCase struct {
	config          Config
	weatherGateway  api.WeatherGateway
	settingsUseCase settings.UseCase
	historyGateway  db.HistoryGateway
	queueSender     queue.Sender
	now             func() time.Time
	rng             *rand.Rand
}

// NewForecastUseCase creates the forecast use case. historyGateway and queueSender may be nil,
// which disables history and refresh enqueuing.
func NewForecastUseCase(config Config, weatherGateway api.WeatherGateway, settingsUseCase settings.UseCase, historyGateway db.HistoryGateway, queueSender queue.Sender) UseCase {
	if config.BatchSize <= 0 {
		config.BatchSize = 10
	}
	return &forecastUseCase{
		config:          config,
		weatherGateway:  weatherGateway,
		settingsUseCase: settingsUseCase,
		historyGateway:  historyGateway,
		queueSender:     queueSender,
		now:             time.Now,
	}
}

func (uc *forecastUseCase) FetchWeather(ctx context.Context, lat, lon float64) *entity.WeatherPayload {
	if uc.weatherGateway == nil {
		return MockWeather(lat, lon, uc.now(), uc.rng)
	}

	payload, err := uc.weatherGateway.GetForecast(ctx, lat, lon)
	if err != nil {
		log.Warn("Weather provider unavailable, using synthetic forecast",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Error(err))
		return MockWeather(lat, lon, uc.now(), uc.rng)
	}
	return payload
}

func (uc *forecastUseCase) GetForecast(ctx context.Context, query Query) (*model.ForecastResponse, error) {
	preferences, err := uc.resolvePreferences(ctx, query)
	if err != nil {
		return nil, err
	}

	location, err := uc.resolveLocation(ctx, query)
	if err != nil {
		return nil, err
	}

	payload := uc.FetchWeather(ctx, location.Lat, location.Lon)
	now := localTime(uc.now(), payload.Timezone)
	forecasts := BuildDailyForecasts(payload, preferences.WorkStart, preferences.WorkEnd, preferences.Preference)

	if err = uc.recordHistory(ctx, query.ProfileID, payload.Source, forecasts); err != nil {
		log.Warn("Failed to record forecast history",
			zap.String("profile_id", query.ProfileID),
			zap.Error(err))
	}

	return &model.ForecastResponse{
		Location:       location,
		Preferences:    preferences,
		PreferenceMode: settings.DescribePreference(preferences.Preference),
		Source:         payload.Source,
		Timezone:       now.Location().String(),
		Today:          now.Format(dateLayout),
		Forecasts:      forecasts,
	}, nil
}

// resolvePreferences applies the query overrides on top of the stored preferences
func (uc *forecastUseCase) resolvePreferences(ctx context.Context, query Query) (entity.Preferences, error) {
	preferences, err := uc.settingsUseCase.GetPreferences(ctx, query.ProfileID)
	if err != nil {
		return entity.Preferences{}, err
	}

	if query.WorkStart != nil {
		preferences.WorkStart = *query.WorkStart
	}
	if query.WorkEnd != nil {
		preferences.WorkEnd = *query.WorkEnd
	}
	if query.Preference != nil {
		preferences.Preference = *query.Preference
	}

	if err = settings.ValidatePreferences(preferences); err != nil {
		return entity.Preferences{}, err
	}
	return preferences, nil
}

// resolveLocation uses the query coordinates when given, else the stored location
func (uc *forecastUseCase) resolveLocation(ctx context.Context, query Query) (entity.Location, error) {
	if (query.Lat == nil) != (query.Lon == nil) {
		return entity.Location{}, fmt.Errorf("%w: lat and lon must be given together", settings.ErrInvalidLocation)
	}
	if query.Lat != nil {
		return uc.settingsUseCase.ResolveLocation(ctx, query.ProfileID, query.Lat, query.Lon)
	}
	return uc.settingsUseCase.GetLocation(ctx, query.ProfileID)
}

func (uc *forecastUseCase) Report(ctx context.Context, query Query) (string, error) {
	response, err := uc.GetForecast(ctx, query)
	if err != nil {
		return "", err
	}
	return BuildReport(response.Location, response.Forecasts, localTime(uc.now(), response.Timezone))
}

// localTime moves now into the forecast's IANA zone, so that dates compare
// against the calendar of the location. Unknown zones keep now as is.
func localTime(now time.Time, timezone string) time.Time {
	if timezone == "" {
		return now
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return now
	}
	return now.In(location)
}

func (uc *forecastUseCase) History(ctx context.Context, profileID string, fromDate string) ([]entity.ForecastRecord, error) {
	if fromDate != "" {
		if _, err := time.Parse(dateLayout, fromDate); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, fromDate)
		}
	}
	if uc.historyGateway == nil {
		return []entity.ForecastRecord{}, nil
	}

	records, err := uc.historyGateway.FindByProfile(ctx, profileID, fromDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find forecast history: %w", err)
	}
	return records, nil
}

func (uc *forecastUseCase) RefreshProfile(ctx context.Context, profileID string) error {
	preferences, err := uc.settingsUseCase.GetPreferences(ctx, profileID)
	if err != nil {
		return err
	}
	location, err := uc.settingsUseCase.GetLocation(ctx, profileID)
	if err != nil {
		return err
	}

	payload := uc.FetchWeather(ctx, location.Lat, location.Lon)
	forecasts := BuildDailyForecasts(payload, preferences.WorkStart, preferences.WorkEnd, preferences.Preference)

	if err = uc.recordHistory(ctx, profileID, payload.Source, forecasts); err != nil {
		return fmt.Errorf("failed to refresh profile %s: %w", profileID, err)
	}

	log.Info("Profile forecast refreshed",
		zap.String("profile_id", profileID),
		zap.String("source", string(payload.Source)),
		zap.Int("days", len(forecasts)))
	return nil
}

// recordHistory stores one summary row per forecast day
func (uc *forecastUseCase) recordHistory(ctx context.Context, profileID string, source entity.WeatherSource, forecasts []entity.DayForecast) error {
	if uc.historyGateway == nil || len(forecasts) == 0 {
		return nil
	}

	records := make([]entity.ForecastRecord, len(forecasts))
	for i, day := range forecasts {
		records[i] = entity.ForecastRecord{
			ProfileID:      profileID,
			Day:            day.Date,
			DryingIndex:    day.DryingIndex,
			Recommendation: day.Recommendation,
			Color:          day.Color,
			RainAlert:      day.RainAlert,
			MinTemp:        day.MinTemp,
			MaxTemp:        day.MaxTemp,
			AvgHumidity:    day.AvgHumidity,
			MaxRainProb:    day.MaxRainProb,
			Source:         source,
		}
	}
	return uc.historyGateway.Upsert(ctx, records)
}

func (uc *forecastUseCase) EnqueueRefreshAll(ctx context.Context, requestID string) error {
	if uc.queueSender == nil {
		return ErrRefreshUnavailable
	}
	log.Info("Starting scheduled forecast refresh", zap.String("request_id", requestID))

	profiles, err := uc.settingsUseCase.ListProfiles(ctx)
	if err != nil {
		return err
	}

	totalEnqueued, totalFailed := 0, 0
	for start := 0; start < len(profiles); start += uc.config.BatchSize {
		end := min(start+uc.config.BatchSize, len(profiles))
		batch := profiles[start:end]

		messages := make([]queue.BatchMessage, len(batch))
		for i, profileID := range batch {
			messages[i] = queue.BatchMessage{
				MessageID: fmt.Sprintf("refresh-%d", start+i),
				Body:      model.RefreshMessage{ProfileID: profileID, RequestID: requestID},
			}
		}

		result, err := uc.queueSender.SendMessageBatch(ctx, uc.config.QueueName, messages)
		if err != nil {
			log.Warn("Failed to send refresh batch",
				zap.String("request_id", requestID),
				zap.Int("batch_start", start),
				zap.Error(err))
			totalFailed += len(batch)
			continue
		}

		for _, failedID := range result.Failed {
			log.Warn("Failed to enqueue profile refresh",
				zap.String("request_id", requestID),
				zap.String("message_id", failedID))
		}
		totalEnqueued += len(result.Successful)
		totalFailed += len(result.Failed)
	}

	log.Info("Completed scheduled forecast refresh",
		zap.String("request_id", requestID),
		zap.Int("total_profiles", len(profiles)),
		zap.Int("total_enqueued", totalEnqueued),
		zap.Int("total_failed", totalFailed))
	return nil
}
