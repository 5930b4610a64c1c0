package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"skydry-api/internal/domain/usecase/forecast"
	"skydry-api/pkg/log"
	"skydry-api/pkg/redis"
)

const refreshLockKey = "forecast_refresh_scheduler"

// RefreshSchedulerConfig holds configuration for the refresh scheduler
type RefreshSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
}

// RefreshScheduler enqueues the forecast refresh of every profile. With a Redis
// client each tick runs under a distributed lock so a single instance enqueues.
type RefreshScheduler struct {
	cron        *cron.Cron
	useCase     forecast.UseCase
	redisClient *redis.Client
	config      RefreshSchedulerConfig
}

func NewRefreshScheduler(useCase forecast.UseCase, redisClient *redis.Client, config RefreshSchedulerConfig) *RefreshScheduler {
	if config.LockTTL <= 0 {
		config.LockTTL = 10 * time.Minute
	}
	return &RefreshScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// Start registers the refresh task and starts the cron loop. It stops when ctx is done.
func (s *RefreshScheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) })
	if err != nil {
		return fmt.Errorf("invalid refresh cron expression %q: %w", s.config.CronExpression, err)
	}

	s.cron.Start()
	log.Infof("Forecast refresh scheduler started with cron expression: %s", s.config.CronExpression)

	go func() {
		<-ctx.Done()
		s.Stop()
		log.Info("Forecast refresh scheduler stopped")
	}()
	return nil
}

// ExecuteScheduledTask enqueues the refresh of all profiles once
func (s *RefreshScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()
	log.Info("Forecast refresh scheduled task triggered", zap.String("request_id", requestID))

	task := func() error { return s.useCase.EnqueueRefreshAll(ctx, requestID) }

	var err error
	if s.redisClient != nil {
		err = redis.LockWithFunc(ctx, s.redisClient, refreshLockKey, redis.NewLockOptions(s.config.LockTTL), task)
	} else {
		err = task()
	}

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Info("Forecast refresh already running on another instance", zap.String("request_id", requestID))
	case err != nil:
		log.Error("Failed to execute scheduled forecast refresh", zap.String("request_id", requestID), zap.Error(err))
	default:
		log.Info("Scheduled forecast refresh completed successfully", zap.String("request_id", requestID))
	}
}

// Stop gracefully stops the scheduler
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
