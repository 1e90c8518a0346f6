package types

// HealthStatus represents the health state of the service or one component.
type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "up"
	HealthStatusDown     HealthStatus = "down"
	HealthStatusDegraded HealthStatus = "degraded"
)

// HealthCheck is the aggregate health report returned by the health endpoint.
type HealthCheck struct {
	Status        HealthStatus            `json:"status"`
	Version       string                  `json:"version"`
	UptimeSeconds int64                   `json:"uptime_seconds"`
	Components    map[string]HealthStatus `json:"components"`
}
