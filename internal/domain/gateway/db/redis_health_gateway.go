package db

import (
	"context"

	"skydry-api/internal/domain/model"
	"skydry-api/pkg/redis"
)

type RedisHealthGateway struct {
	client *redis.Client
}

var _ HealthDBGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	health := redis.HealthCheck(ctx, gateway.client)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(health.Status),
		Details: health.Details,
	}
}
