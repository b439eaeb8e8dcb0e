package workers

import (
	"context"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled by cfg. A zero autosave interval
// leaves the set empty.
func NewWorkers(cfg config.Workers, flusher Flusher, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.AutoSaveInterval > 0 {
		w.workers = append(w.workers, NewAutoSaveJob(flusher, cfg.AutoSaveInterval, logger))
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
