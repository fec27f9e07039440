package health

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/piresc/passeio/internal/pkg/circuitbreaker"
	"github.com/piresc/passeio/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// ErrNotConnected is reported by connection checkers
var ErrNotConnected = errors.New("not connected")

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is satisfied by the Postgres and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewPingChecker checks a dependency by pinging it
func NewPingChecker(p Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		return p.Ping(ctx)
	})
}

// Connection is satisfied by the NATS client
type Connection interface {
	IsConnected() bool
}

// NewConnectionChecker reports unhealthy while the connection is down
func NewConnectionChecker(conn Connection) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if !conn.IsConnected() {
			return ErrNotConnected
		}
		return nil
	})
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	checkers map[string]HealthChecker
	breakers *circuitbreaker.Manager
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(l *logger.ZapLogger, breakers *circuitbreaker.Manager) *HealthService {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		breakers: breakers,
		logger:   l,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status          string                                       `json:"status"`
	Timestamp       time.Time                                    `json:"timestamp"`
	Service         string                                       `json:"service"`
	Version         string                                       `json:"version,omitempty"`
	Dependencies    map[string]DependencyInfo                    `json:"dependencies,omitempty"`
	CircuitBreakers map[string]circuitbreaker.CircuitBreakerStats `json:"circuit_breakers,omitempty"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(h.checkers)),
	}

	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checkers[name].CheckHealth(ctx); err != nil {
			h.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}

// BreakerStats returns the state of every marketplace circuit breaker
func (h *HealthService) BreakerStats() map[string]circuitbreaker.CircuitBreakerStats {
	if h.breakers == nil {
		return nil
	}
	return h.breakers.GetStats()
}
