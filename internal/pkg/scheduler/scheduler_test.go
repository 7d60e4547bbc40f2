package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobInvalidSchedule(t *testing.T) {
	s := NewScheduler()
	err := s.AddJob(Job{
		Name:     "broken",
		Schedule: "not-a-schedule",
		Run:      func(ctx context.Context) error { return nil },
	})
	assert.Error(t, err)
}

func TestSchedulerRunsJob(t *testing.T) {
	s := NewScheduler()

	var runs int32
	err := s.AddJob(Job{
		Name:     "tick",
		Schedule: "@every 10ms",
		Run: func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		},
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 1
	}, 2*time.Second, 10*time.Millisecond)
}
