package service

import (
	"context"
	"sync"
	"time"

	"github.com/societyhub/societyhub/internal/logger"
)

// Refresher is anything that can reload its mirror from the backend. All of
// the entity services implement it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob keeps the local mirrors current in the background.
type RefreshJob interface {
	RefreshAll(ctx context.Context) error
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type refreshJob struct {
	refreshers []Refresher
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that reloads every registered mirror on
// a ticker. The job is idle until Start is called.
func NewRefreshJob(log *logger.Logger, refreshers ...Refresher) RefreshJob {
	return &refreshJob{refreshers: refreshers, logger: log}
}

// RefreshAll reloads every mirror once, sequentially. Individual failures
// are logged and do not stop the remaining reloads; the first error is
// returned so callers can surface it.
func (j *refreshJob) RefreshAll(ctx context.Context) error {
	var first error
	for _, r := range j.refreshers {
		if err := r.Refresh(ctx); err != nil {
			j.logger.Warn().Err(err).Msg("background refresh failed")
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Start stops any previously running job, then launches a background
// goroutine that calls RefreshAll every interval. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.RefreshAll(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
