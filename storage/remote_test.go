package storage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newRemote(t *testing.T, baseURL string) *RemoteStore {
	t.Helper()
	return NewRemoteStore(baseURL, nil, &http.Client{Timeout: 2 * time.Second})
}

func TestCollectionURL(t *testing.T) {
	s := NewRemoteStore("http://api.local/api/", nil, nil)
	if got := s.CollectionURL(BucketProperties); got != "http://api.local/api/properties" {
		t.Fatalf("unexpected collection URL %s", got)
	}
	if got := s.ItemURL(BucketTenants, "t1"); got != "http://api.local/api/tenants/t1" {
		t.Fatalf("unexpected item URL %s", got)
	}
}

func TestCollectionURL_ResourceOverride(t *testing.T) {
	s := NewRemoteStore("http://api.local/api", map[string]string{BucketUsers: "/accounts"}, nil)
	if got := s.CollectionURL(BucketUsers); got != "http://api.local/api/accounts" {
		t.Fatalf("unexpected overridden URL %s", got)
	}
	if got := s.CollectionURL(BucketUnits); got != "http://api.local/api/units" {
		t.Fatalf("override leaked into other buckets: %s", got)
	}
}

func TestGetJSON_JSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"lease term is invalid"}`))
	}))
	defer server.Close()

	var out []struct{}
	err := newRemote(t, server.URL).GetJSON(context.Background(), server.URL+"/leases", &out)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", netErr.Status)
	}
	if netErr.Message != "lease term is invalid" {
		t.Fatalf("unexpected message %q", netErr.Message)
	}
}

func TestGetJSON_HTMLErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<!DOCTYPE html><html><head><title>502 Bad Gateway</title></head><body><h1>nginx</h1></body></html>`))
	}))
	defer server.Close()

	var out []struct{}
	err := newRemote(t, server.URL).GetJSON(context.Background(), server.URL+"/properties", &out)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Message != "502 Bad Gateway" {
		t.Fatalf("expected gateway page title, got %q", netErr.Message)
	}
}

func TestGetJSON_EmptyErrorBodyGetsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var out []struct{}
	err := newRemote(t, server.URL).GetJSON(context.Background(), server.URL+"/units", &out)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Message != genericErrorMessage {
		t.Fatalf("expected generic message, got %q", netErr.Message)
	}
}

func TestGetJSON_MalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":`))
	}))
	defer server.Close()

	var out []struct{}
	err := newRemote(t, server.URL).GetJSON(context.Background(), server.URL+"/tenants", &out)

	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
}

func TestDo_ConnectionRefusedIsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := newRemote(t, url).Delete(context.Background(), url+"/properties/p1")

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Status != 0 {
		t.Fatalf("expected status 0 for a failed request, got %d", netErr.Status)
	}
}

func TestNormalizeErrorBody(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"json message", `{"message":"no such unit"}`, "no such unit"},
		{"json without message", `{"error":"nope"}`, genericErrorMessage},
		{"html title", `<html><head><title>Service Unavailable</title></head></html>`, "Service Unavailable"},
		{"html heading only", `<html><body><h1>Gateway Timeout</h1></body></html>`, "Gateway Timeout"},
		{"plain text", "something broke", genericErrorMessage},
		{"empty", "", genericErrorMessage},
	}

	for _, tc := range cases {
		if got := normalizeErrorBody([]byte(tc.body)); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
