package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestCheckAllHealthAllHealthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", &stubChecker{})
	svc.AddChecker("redis", &stubChecker{})

	response := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "healthy", response.Dependencies["redis"].Status)
}

func TestCheckAllHealthOneUnhealthy(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", &stubChecker{})
	svc.AddChecker("nats", &stubChecker{err: errors.New("connection refused")})

	response := svc.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
	assert.Equal(t, "unhealthy", response.Dependencies["nats"].Status)
	assert.Equal(t, "connection refused", response.Dependencies["nats"].Error)
}

func TestCheckAllHealthNilClientsSkipped(t *testing.T) {
	svc := NewHealthService()
	svc.AddChecker("postgres", NewPostgresHealthChecker(nil))
	svc.AddChecker("redis", NewRedisHealthChecker(nil))
	svc.AddChecker("nats", NewNATSHealthChecker(nil))

	response := svc.CheckAllHealth(context.Background())
	assert.Equal(t, "healthy", response.Status)
}
