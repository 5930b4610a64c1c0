package queue

import (
	"context"

	"skydry-api/internal/domain/model"
)

// Checker is implemented by queue consumers able to verify their queue
type Checker interface {
	HealthCheck(ctx context.Context) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
	RegisterWorker(name string, worker Checker)
	UnregisterWorker(name string)
}
