package workers

import (
	"context"
	"log"

	"propdesk/services"
)

// SnapshotWorker warms the fallback store from the remote API so
// offline reads stay fresh. Passes run only when triggered; the
// schedule (cron or interval) lives in the scheduler.
type SnapshotWorker struct {
	snapshot  *services.SnapshotService
	triggerCh chan struct{}
}

func NewSnapshotWorker(snapshot *services.SnapshotService) *SnapshotWorker {
	return &SnapshotWorker{
		snapshot:  snapshot,
		triggerCh: make(chan struct{}, 1),
	}
}

// Trigger requests a snapshot pass. A pass already queued absorbs
// further triggers.
func (w *SnapshotWorker) Trigger() {
	select {
	case w.triggerCh <- struct{}{}:
	default:
	}
}

// Run starts the snapshot loop.
func (w *SnapshotWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("Snapshot worker stopping")
			return
		case <-w.triggerCh:
			w.runOnce(ctx)
		}
	}
}

func (w *SnapshotWorker) runOnce(ctx context.Context) {
	stats, err := w.snapshot.Run(ctx)
	if err != nil {
		log.Printf("Snapshot worker: %v", err)
		return
	}
	log.Printf("Snapshot worker: %s", stats.ToJSON())
}
