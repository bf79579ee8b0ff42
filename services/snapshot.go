package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"propdesk/storage"
)

// SnapshotService warms the fallback store by pulling every entity
// collection from the remote API and writing it into the corresponding
// bucket. This is the only place data flows between the two stores; the
// data-access layer itself never reconciles them.
type SnapshotService struct {
	remote *storage.RemoteStore
	local  storage.FallbackStore
}

func NewSnapshotService(remote *storage.RemoteStore, local storage.FallbackStore) *SnapshotService {
	return &SnapshotService{
		remote: remote,
		local:  local,
	}
}

// SnapshotStats tracks the outcome of one snapshot pass.
type SnapshotStats struct {
	BucketsWritten int
	Records        int
	Failed         int
}

// ToJSON returns JSON-serializable metadata for run logs.
func (s *SnapshotStats) ToJSON() json.RawMessage {
	data, _ := json.Marshal(map[string]int{
		"buckets_written": s.BucketsWritten,
		"records":         s.Records,
		"failed":          s.Failed,
	})
	return data
}

// Run snapshots every bucket. Individual bucket failures are logged and
// counted; an error is returned only when no bucket could be written.
func (s *SnapshotService) Run(ctx context.Context) (*SnapshotStats, error) {
	stats := &SnapshotStats{}

	for _, bucket := range storage.Buckets {
		n, err := s.snapshotBucket(ctx, bucket)
		if err != nil {
			log.Printf("Snapshot %s failed: %v", bucket, err)
			stats.Failed++
			continue
		}
		stats.BucketsWritten++
		stats.Records += n
	}

	if stats.BucketsWritten == 0 && stats.Failed > 0 {
		return stats, fmt.Errorf("snapshot: remote unreachable, %d buckets failed", stats.Failed)
	}
	return stats, nil
}

func (s *SnapshotService) snapshotBucket(ctx context.Context, bucket string) (int, error) {
	// Decoding into raw records keeps the snapshot shape-agnostic while
	// still rejecting non-array payloads.
	var records []json.RawMessage
	if err := s.remote.GetJSON(ctx, s.remote.CollectionURL(bucket), &records); err != nil {
		return 0, err
	}
	if records == nil {
		records = []json.RawMessage{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return 0, err
	}
	if err := s.local.WriteBucket(bucket, payload); err != nil {
		return 0, fmt.Errorf("write bucket: %w", err)
	}
	return len(records), nil
}
