package health

import (
	"context"
	"sync"

	"skydry-api/internal/domain/gateway/db"
	"skydry-api/internal/domain/gateway/queue"
	"skydry-api/internal/domain/model"
)

type healthUseCase struct {
	dbGateway    db.HealthDBGateway
	cacheGateway db.HealthDBGateway
	queueGateway queue.HealthGateway
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cacheGateway db.HealthDBGateway, queueGateway queue.HealthGateway) UseCase {
	return &healthUseCase{
		dbGateway:    dbGateway,
		cacheGateway: cacheGateway,
		queueGateway: queueGateway,
	}
}

// CheckHealth probes every component in parallel. Components reported as UNKNOWN
// are not configured and do not bring the overall status down.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	var wg sync.WaitGroup
	var dbHealth, cacheHealth, queueHealth model.ComponentHealthStatus

	wg.Add(3)
	go func() {
		defer wg.Done()
		dbHealth = useCase.dbGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		cacheHealth = useCase.cacheGateway.Health(ctx)
	}()
	go func() {
		defer wg.Done()
		queueHealth = useCase.queueGateway.Health(ctx)
	}()
	wg.Wait()

	overallStatus := model.StatusUp
	for _, component := range []model.ComponentHealthStatus{dbHealth, cacheHealth, queueHealth} {
		if component.Status == model.StatusDown {
			overallStatus = model.StatusDown
		}
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	}
}
