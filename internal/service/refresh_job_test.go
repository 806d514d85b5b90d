package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/societyhub/societyhub/internal/logger"
)

type countingRefresher struct {
	calls atomic.Int64
	err   error
}

func (c *countingRefresher) Refresh(context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestRefreshJob_RefreshAllContinuesPastFailures(t *testing.T) {
	failing := &countingRefresher{err: errors.New("backend down")}
	healthy := &countingRefresher{}

	job := NewRefreshJob(logger.Nop(), failing, healthy)

	err := job.RefreshAll(context.Background())
	require.Error(t, err, "the first failure is reported")

	assert.Equal(t, int64(1), failing.calls.Load())
	assert.Equal(t, int64(1), healthy.calls.Load(), "a failing mirror does not block the rest")
}

func TestRefreshJob_StartStop(t *testing.T) {
	r := &countingRefresher{}
	job := NewRefreshJob(logger.Nop(), r)

	job.Start(context.Background(), 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return r.calls.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	job.Stop()
	settled := r.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, r.calls.Load(), "no refreshes after Stop returns")
}

func TestRefreshJob_StopWithoutStartIsNoop(t *testing.T) {
	job := NewRefreshJob(logger.Nop(), &countingRefresher{})
	job.Stop()
}
