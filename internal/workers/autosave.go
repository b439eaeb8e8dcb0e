package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

// finalFlushTimeout bounds the flush performed by Stop.
const finalFlushTimeout = 5 * time.Second

type autoSaveJob struct {
	flusher  Flusher
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoSaveJob creates a job that calls flusher.Flush every interval.
// The job is idle until Start is called.
func NewAutoSaveJob(flusher Flusher, interval time.Duration, logger *logger.Logger) Worker {
	return &autoSaveJob{flusher: flusher, interval: interval, logger: logger}
}

// Start stops any previously running job, then launches the ticker
// goroutine. A non-positive interval leaves the job idle.
func (j *autoSaveJob) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Str("func", "autoSaveJob.Start").Msg("autosave disabled")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.flush(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("autosave started")
}

// Stop cancels the ticker goroutine, waits for it and flushes one last
// time so writes since the last tick are not lost.
func (j *autoSaveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()

	ctx, done := context.WithTimeout(context.Background(), finalFlushTimeout)
	defer done()
	j.flush(ctx)
}

func (j *autoSaveJob) flush(ctx context.Context) {
	if err := j.flusher.Flush(ctx); err != nil {
		j.logger.Err(err).Str("func", "autoSaveJob.flush").Msg("autosave failed")
		return
	}
	j.logger.Debug().Msg("preferences flushed")
}
