package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codeby-aftab/trip-ai-backend/logger"
	"github.com/codeby-aftab/trip-ai-backend/types"
)

// HealthService reports liveness/readiness of the service and its
// key-value store dependency.
type HealthService struct {
	redisClient *redis.Client
	version     string
	startTime   time.Time
}

func NewHealthService(redisClient *redis.Client, version string) *HealthService {
	return &HealthService{
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
	}
}

// CheckHealth pings the dependencies and returns an aggregate report. A
// down key-value store degrades the service rather than killing it: plan
// generation still works without saved trips.
func (s *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := map[string]types.HealthStatus{}

	status := types.HealthStatusUp
	if s.redisClient != nil {
		if err := s.redisClient.Ping(ctx).Err(); err != nil {
			logger.GetLogger().Warnw("Redis health check failed", "error", err)
			components["redis"] = types.HealthStatusDown
			status = types.HealthStatusDegraded
		} else {
			components["redis"] = types.HealthStatusUp
		}
	}

	return types.HealthCheck{
		Status:        status,
		Version:       s.version,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		Components:    components,
	}
}

// IsReady reports whether the service can accept traffic.
func (s *HealthService) IsReady(ctx context.Context) bool {
	if s.redisClient == nil {
		return true
	}
	return s.redisClient.Ping(ctx).Err() == nil
}
