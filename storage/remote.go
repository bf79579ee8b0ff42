package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// genericErrorMessage is used when no message could be extracted from
// an error response body.
const genericErrorMessage = "An unexpected error occurred"

// RemoteStore talks to the console's REST backend. It makes exactly one
// attempt per call and normalizes every failure into a NetworkError or
// MalformedResponseError; the fallback policy lives in the service
// layer, not here.
type RemoteStore struct {
	baseURL   string
	resources map[string]string
	client    *http.Client
}

// NewRemoteStore builds a store for baseURL. resources optionally maps
// bucket names to non-default resource paths; by default a bucket named
// "properties" is served at baseURL + "/properties".
func NewRemoteStore(baseURL string, resources map[string]string, client *http.Client) *RemoteStore {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		resources: resources,
		client:    client,
	}
}

// CollectionURL returns the full URL of an entity collection.
func (s *RemoteStore) CollectionURL(bucket string) string {
	path := "/" + bucket
	if p, ok := s.resources[bucket]; ok && p != "" {
		path = p
	}
	return s.baseURL + path
}

// ItemURL returns the full URL of a single entity.
func (s *RemoteStore) ItemURL(bucket, id string) string {
	return s.CollectionURL(bucket) + "/" + id
}

// GetJSON fetches url and decodes the body into v.
func (s *RemoteStore) GetJSON(ctx context.Context, url string, v interface{}) error {
	return s.do(ctx, http.MethodGet, url, nil, v)
}

// PostJSON sends body as JSON and decodes the response into v (when v
// is non-nil).
func (s *RemoteStore) PostJSON(ctx context.Context, url string, body, v interface{}) error {
	return s.do(ctx, http.MethodPost, url, body, v)
}

func (s *RemoteStore) PutJSON(ctx context.Context, url string, body, v interface{}) error {
	return s.do(ctx, http.MethodPut, url, body, v)
}

func (s *RemoteStore) Delete(ctx context.Context, url string) error {
	return s.do(ctx, http.MethodDelete, url, nil, nil)
}

func (s *RemoteStore) do(ctx context.Context, method, url string, body, v interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &NetworkError{Op: method, URL: url, Message: "encode request: " + err.Error(), Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &NetworkError{Op: method, URL: url, Message: err.Error(), Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &NetworkError{Op: method, URL: url, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return &NetworkError{
			Op:      method,
			URL:     url,
			Status:  resp.StatusCode,
			Message: normalizeErrorBody(respBody),
		}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &MalformedResponseError{Op: method, URL: url, Err: err}
	}
	return nil
}

// normalizeErrorBody extracts a human-readable message from an error
// response. Backends answer {"message": ...}; reverse proxies and
// gateways tend to answer with HTML splash pages instead, so those get
// their title or first heading pulled out.
func normalizeErrorBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return genericErrorMessage
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	if looksLikeHTML(trimmed) {
		if msg := htmlErrorMessage(trimmed); msg != "" {
			return msg
		}
	}

	return genericErrorMessage
}

func looksLikeHTML(body []byte) bool {
	lower := bytes.ToLower(body)
	return bytes.HasPrefix(lower, []byte("<!doctype html")) || bytes.Contains(lower, []byte("<html"))
}

func htmlErrorMessage(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
