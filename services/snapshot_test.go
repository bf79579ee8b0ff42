package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"propdesk/storage"
)

func TestSnapshot_WarmsEveryBucket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/properties":
			w.Write(loadFixture(t, "properties.json"))
		case "/tenants":
			w.Write([]byte(`[{"id":"t1","fullName":"Alex Rivera"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	local := newTestStore(t)
	remote := storage.NewRemoteStore(server.URL, nil, &http.Client{Timeout: 2 * time.Second})
	svc := NewSnapshotService(remote, local)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if stats.BucketsWritten != len(storage.Buckets) {
		t.Fatalf("expected %d buckets written, got %d", len(storage.Buckets), stats.BucketsWritten)
	}
	if stats.Records != 3 {
		t.Fatalf("expected 3 records, got %d", stats.Records)
	}
	if stats.Failed != 0 {
		t.Fatalf("expected no failures, got %d", stats.Failed)
	}

	// The warmed store now serves reads with the remote gone.
	server.Close()
	data := newTestService(t, server.URL, local, false)

	props := data.GetProperties(context.Background())
	if len(props) != 2 || props[0].ID != "p1" {
		t.Fatalf("expected warmed properties, got %+v", props)
	}

	tenant, err := data.GetTenant(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tenant.FullName != "Alex Rivera" {
		t.Fatalf("expected warmed tenant, got %+v", tenant)
	}
}

func TestSnapshot_AllBucketsFailingIsAnError(t *testing.T) {
	local := newTestStore(t)
	remote := storage.NewRemoteStore(deadRemoteURL(t), nil, &http.Client{Timeout: 2 * time.Second})
	svc := NewSnapshotService(remote, local)

	stats, err := svc.Run(context.Background())
	if err == nil {
		t.Fatalf("expected error when every bucket fails")
	}
	if stats.Failed != len(storage.Buckets) {
		t.Fatalf("expected %d failures, got %d", len(storage.Buckets), stats.Failed)
	}

	// Nothing was written.
	for _, bucket := range storage.Buckets {
		data, err := local.ReadBucket(bucket)
		if err != nil {
			t.Fatalf("read bucket %s: %v", bucket, err)
		}
		if data != nil {
			t.Fatalf("bucket %s written despite failed snapshot", bucket)
		}
	}
}

func TestSnapshot_NonArrayPayloadCountsAsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/units" {
			w.Write([]byte(`{"error":"shape"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	local := newTestStore(t)
	remote := storage.NewRemoteStore(server.URL, nil, &http.Client{Timeout: 2 * time.Second})
	svc := NewSnapshotService(remote, local)

	stats, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if stats.Failed != 1 {
		t.Fatalf("expected 1 failed bucket, got %d", stats.Failed)
	}
	if stats.BucketsWritten != len(storage.Buckets)-1 {
		t.Fatalf("expected %d buckets written, got %d", len(storage.Buckets)-1, stats.BucketsWritten)
	}
}
