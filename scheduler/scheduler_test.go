package scheduler

import (
	"path/filepath"
	"testing"

	"propdesk/config"
	"propdesk/models"
	"propdesk/services"
	"propdesk/storage"
)

type fakeWorker struct {
	triggered int
}

func (w *fakeWorker) Trigger() { w.triggered++ }

func newTestScheduler(t *testing.T) (*Scheduler, *fakeWorker, *storage.SQLiteStore) {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "fallback.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	worker := &fakeWorker{}
	sched := New(&config.Config{}, worker, store, services.NewSeedService(store))
	return sched, worker, store
}

func TestHandleCommand_Snapshot(t *testing.T) {
	sched, worker, _ := newTestScheduler(t)

	cmd := &models.Command{Command: models.CmdSnapshot}
	if err := sched.handleCommand(cmd); err != nil {
		t.Fatalf("snapshot command failed: %v", err)
	}
	if worker.triggered != 1 {
		t.Fatalf("expected 1 trigger, got %d", worker.triggered)
	}
}

func TestHandleCommand_SeedAndReset(t *testing.T) {
	sched, _, store := newTestScheduler(t)

	if err := sched.handleCommand(&models.Command{Command: models.CmdSeed}); err != nil {
		t.Fatalf("seed command failed: %v", err)
	}
	data, err := store.ReadBucket(storage.BucketProperties)
	if err != nil {
		t.Fatalf("read bucket: %v", err)
	}
	if data == nil {
		t.Fatalf("seed command left buckets empty")
	}

	if err := sched.handleCommand(&models.Command{Command: models.CmdReset}); err != nil {
		t.Fatalf("reset command failed: %v", err)
	}
	data, err = store.ReadBucket(storage.BucketProperties)
	if err != nil {
		t.Fatalf("read bucket: %v", err)
	}
	if data != nil {
		t.Fatalf("reset command left bucket data behind")
	}
}

func TestHandleCommand_Unknown(t *testing.T) {
	sched, _, _ := newTestScheduler(t)

	if err := sched.handleCommand(&models.Command{Command: "reboot"}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}
