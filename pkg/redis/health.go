package redis

import (
	"context"
	"strconv"
	"time"
)

// Health is the result of a Redis health check
type Health struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports pool statistics
func HealthCheck(ctx context.Context, client *Client) Health {
	if client == nil {
		return Health{Status: StatusUnknown, Details: map[string]string{"error": "client not configured"}}
	}

	start := time.Now()
	details := map[string]string{"addr": client.config.Addr()}
	if err := client.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return Health{Status: StatusDown, Details: details}
	}

	stats := client.rdb.PoolStats()
	details["latency"] = time.Since(start).String()
	details["total_conns"] = strconv.FormatUint(uint64(stats.TotalConns), 10)
	details["idle_conns"] = strconv.FormatUint(uint64(stats.IdleConns), 10)
	return Health{Status: StatusUp, Details: details}
}
