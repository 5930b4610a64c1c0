package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	gormdb "gorm.io/gorm"

	"skydry-api/configs"
	"skydry-api/docs"
	"skydry-api/internal/application/controller"
	"skydry-api/internal/application/middleware"
	"skydry-api/internal/application/processor"
	"skydry-api/internal/application/schedule"
	"skydry-api/internal/domain/gateway/api"
	"skydry-api/internal/domain/gateway/db"
	"skydry-api/internal/domain/gateway/queue"
	"skydry-api/internal/domain/usecase/forecast"
	"skydry-api/internal/domain/usecase/health"
	"skydry-api/internal/domain/usecase/settings"
	"skydry-api/internal/infra/aws"
	cacheredis "skydry-api/internal/infra/cache/redis"
	"skydry-api/internal/infra/database/gorm"
	httpclient "skydry-api/pkg/http"
	"skydry-api/pkg/log"
	"skydry-api/pkg/msg"
	"skydry-api/pkg/resource"
	"skydry-api/pkg/sqs"
)

func main() {
	defer log.Sync()
	log.SetLevel(resource.GetStringOrDefault("app.log.level", configs.Env.LogLevel))
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath)
	router := e.Group(contextPath, middleware.ProfileResolver())
	docs.SwaggerInfo.BasePath = contextPath
	e.GET(contextPath+"/swagger/*", echoSwagger.WrapHandler)

	redisClient, err := cacheredis.NewClient(ctx)
	if err != nil {
		log.Fatalf("Redis is required for the settings store: %v", err)
	}
	defer func() { _ = redisClient.Close() }()

	database := initDatabase()

	// Init Gateways
	weatherGateway := api.NewRateLimitedWeatherGateway(
		api.NewWeatherGateway(api.WeatherGatewayConfig{
			BaseURL:      resource.GetStringOrDefault("app.weather.base-url", "https://api.open-meteo.com"),
			Path:         resource.GetString("app.weather.path"),
			ForecastDays: resource.GetInt("app.weather.forecast-days"),
			Timeout:      resource.GetDuration("app.weather.timeout"),
		}, httpclient.ClientOptions{Logger: httpclient.NewZapLogger("open-meteo")}),
		resource.GetFloat64OrDefault("app.weather.rate-limit-rps", 5),
		resource.GetIntOrDefault("app.weather.rate-limit-burst", 10),
	)
	geocoderGateway := api.NewGeocoderGateway(api.GeocoderGatewayConfig{
		BaseURL: resource.GetStringOrDefault("app.geocoder.base-url", "https://apis.map.qq.com"),
		Path:    resource.GetString("app.geocoder.path"),
		Key:     resource.GetString("app.geocoder.key"),
		Timeout: resource.GetDuration("app.geocoder.timeout"),
	}, httpclient.ClientOptions{
		Logger: httpclient.NewZapLogger("tencent-geocoder"),
		Backoff: httpclient.NewBackoffConfig(
			resource.GetInt("app.geocoder.max-retries"),
			resource.GetDurationOrDefault("app.geocoder.initial-interval", 200*time.Millisecond),
			resource.GetDurationOrDefault("app.geocoder.max-interval", 2*time.Second),
		),
	})
	settingsGateway := db.NewRedisSettingsGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	var historyGateway db.HistoryGateway
	if database != nil {
		historyGateway = db.NewGormHistoryGateway(database)
	}

	var queueSender queue.Sender
	sqsClient := initQueueClient(ctx)
	if sqsClient != nil {
		queueSender = aws.NewSQSSenderAdapter(sqsClient)
	}

	// Init UseCase
	queueName := resource.GetStringOrDefault("app.queue.refresh-name", "skydry-forecast-refresh")
	settingsUseCase := settings.NewSettingsUseCase(settingsGateway, geocoderGateway)
	forecastUseCase := forecast.NewForecastUseCase(forecast.Config{
		QueueName: queueName,
		BatchSize: resource.GetIntOrDefault("app.queue.batch-size", 10),
	}, weatherGateway, settingsUseCase, historyGateway, queueSender)
	healthUseCase := health.NewHealthUseCase(
		db.NewGormHealthDBGateway(database),
		db.NewRedisHealthGateway(redisClient),
		queueHealthGateway,
	)

	// Init Controller
	healthController := controller.NewHealthController(router, healthUseCase)
	forecastController := controller.NewForecastController(router, forecastUseCase)
	settingsController := controller.NewSettingsController(router, settingsUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	forecastController.InitForecastRoutes()
	settingsController.InitSettingsRoutes()

	// Init Worker
	if sqsClient != nil {
		worker, err := sqs.NewWorker(ctx, sqsClient, queueName, processor.NewRefreshProcessor(forecastUseCase), &sqs.WorkerConfig{
			MaxNumberOfMessages: resource.GetInt32("app.queue.batch-size"),
			WaitTimeSeconds:     resource.GetInt32("app.queue.wait-time-seconds"),
			VisibilityTimeout:   resource.GetInt32("app.queue.visibility-timeout"),
			PoolSize:            resource.GetInt("app.queue.pool-size"),
		})
		if err != nil {
			log.Warn(msg.GetMessage("app.component-unavailable", "Refresh worker", err))
		} else {
			queueHealthGateway.RegisterWorker(queueName, worker)
			go worker.Start(ctx)
		}
	}

	// Init Schedule
	if resource.GetBool("app.schedule.enabled") && queueSender != nil {
		refreshScheduler := schedule.NewRefreshScheduler(forecastUseCase, redisClient, schedule.RefreshSchedulerConfig{
			CronExpression: resource.GetStringOrDefault("app.schedule.refresh-cron", "0 2,10,18 * * *"),
			LockTTL:        resource.GetDuration("app.schedule.lock-ttl"),
		})
		if err = refreshScheduler.Start(ctx); err != nil {
			log.Fatalf("Failed to start refresh scheduler: %v", err)
		}
	} else {
		log.Info(msg.GetMessage("app.component-disabled", "Refresh schedule"))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", configs.Env.Port)
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown failed: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// initDatabase connects the history database. History is optional, so failures only disable it.
func initDatabase() *gormdb.DB {
	if !resource.GetBool("app.db.enabled") {
		log.Info(msg.GetMessage("app.component-disabled", "Forecast history"))
		return nil
	}

	database, err := gorm.NewDB()
	if err != nil {
		log.Warn(msg.GetMessage("app.component-unavailable", "Forecast history", err))
		return nil
	}
	return database
}

// initQueueClient builds the SQS client used by the refresh sender and worker
func initQueueClient(ctx context.Context) *awssqs.Client {
	if !resource.GetBool("app.queue.enabled") {
		log.Info(msg.GetMessage("app.component-disabled", "Refresh queue"))
		return nil
	}

	cfg, err := aws.LoadConfig(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("app.component-unavailable", "Refresh queue", err))
		return nil
	}
	return aws.NewSqsClient(cfg)
}
