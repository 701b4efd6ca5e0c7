// Package worker provides background workers for the service process.
package worker

import (
	"context"
	"time"

	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

// SnapshotWorker periodically persists the knowledge index snapshot so
// restarts do not lose entries added after startup.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - Flush is idempotent, so an extra flush on shutdown is harmless
type SnapshotWorker struct {
	store    *knowledge.Store
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewSnapshotWorker creates a new worker flushing store every interval.
func NewSnapshotWorker(store *knowledge.Store, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		store:    store,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background flush loop. Does not block server startup.
func (w *SnapshotWorker) Start(ctx context.Context) error {
	logging.Default().Info("knowledge snapshot worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop, performs a final flush, and waits for
// completion.
func (w *SnapshotWorker) Stop() {
	logging.Default().Info("knowledge snapshot worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("knowledge snapshot worker stopped")
}

func (w *SnapshotWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.store.Flush(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("knowledge snapshot flush failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			if err := w.store.Flush(ctx); err != nil {
				logging.Default().Error("final knowledge snapshot flush failed",
					"error", err.Error())
			}
			return

		case <-ctx.Done():
			logging.Default().Info("knowledge snapshot worker context cancelled")
			return
		}
	}
}
