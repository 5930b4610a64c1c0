package queue

import (
	"context"
	"strconv"
	"sync"

	"skydry-api/internal/domain/model"
)

type QueueHealthGateway struct {
	workers map[string]Checker
	mutex   sync.RWMutex
}

var _ HealthGateway = (*QueueHealthGateway)(nil)

func NewQueueHealthGateway() *QueueHealthGateway {
	return &QueueHealthGateway{
		workers: make(map[string]Checker),
	}
}

func (gateway *QueueHealthGateway) RegisterWorker(name string, worker Checker) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.workers[name] = worker
}

func (gateway *QueueHealthGateway) UnregisterWorker(name string) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.workers, name)
}

func (gateway *QueueHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	if len(gateway.workers) == 0 {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message":       "No workers registered",
				"workers_total": "0",
			},
		}
	}

	overallStatus := model.StatusUp
	details := make(map[string]string)
	workersUp := 0

	for name, worker := range gateway.workers {
		if err := worker.HealthCheck(ctx); err != nil {
			overallStatus = model.StatusDown
			details[name+"_status"] = string(model.StatusDown)
			details[name+"_error"] = err.Error()
			continue
		}
		workersUp++
		details[name+"_status"] = string(model.StatusUp)
	}

	details["workers_total"] = strconv.Itoa(len(gateway.workers))
	details["workers_up"] = strconv.Itoa(workersUp)
	details["workers_down"] = strconv.Itoa(len(gateway.workers) - workersUp)

	return model.ComponentHealthStatus{
		Status:  overallStatus,
		Details: details,
	}
}
