package worker_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/rakshak-ai/rakshak/pkg/domain/types"
	"github.com/rakshak-ai/rakshak/pkg/service/knowledge"
	"github.com/rakshak-ai/rakshak/pkg/service/worker"
)

func TestSnapshotWorkerFlushesOnStop(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.enc")
	key := bytes.Repeat([]byte{0x42}, 32)

	store, err := knowledge.New(ctx, knowledge.NewStaticKeySource(key), nil, knowledge.WithSnapshotPath(path))
	gt.NoError(t, err).Required()

	w := worker.NewSnapshotWorker(store, time.Hour)
	gt.NoError(t, w.Start(ctx))

	// Add an item after startup so the stop-time flush has new state
	gt.NoError(t, store.Upsert(ctx, "late", "Added after startup", types.CategoryNonEmergency, ""))

	before, err := os.Stat(path)
	gt.NoError(t, err).Required()

	w.Stop()

	// The final flush rewrote the snapshot, and a fresh store sees the
	// late item
	after, err := os.Stat(path)
	gt.NoError(t, err).Required()
	gt.Bool(t, after.ModTime().Before(before.ModTime())).False()

	reopened, err := knowledge.New(ctx, knowledge.NewStaticKeySource(key), nil, knowledge.WithSnapshotPath(path))
	gt.NoError(t, err).Required()
	gt.Number(t, reopened.Len()).Equal(1)
}
