package redis

import (
	"context"
	"fmt"

	"skydry-api/pkg/redis"
	"skydry-api/pkg/resource"
	"skydry-api/pkg/util/numberutils"
)

// NewClient connects to Redis using app.redis.* properties and verifies the connection
func NewClient(ctx context.Context) (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(numberutils.ToIntWithDefault(resource.GetString("app.redis.port"), 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithKeyNamespace(resource.GetStringOrDefault("app.redis.namespace", "skydry"))
	config.DialTimeout = resource.GetDurationOrDefault("app.redis.dial-timeout", config.DialTimeout)
	config.ReadTimeout = resource.GetDurationOrDefault("app.redis.read-timeout", config.ReadTimeout)

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("fail to connect redis at %s: %w", config.Addr(), err)
	}
	return client, nil
}
