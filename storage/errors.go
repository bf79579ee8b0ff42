package storage

import "fmt"

// NetworkError covers every way a remote call can fail to produce an
// authoritative result: connect errors, timeouts, and non-success
// status codes. Message carries the normalized server message when one
// could be extracted from the response body.
type NetworkError struct {
	Op      string
	URL     string
	Status  int // 0 when the request never completed
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s %s: status %d: %s", e.Op, e.URL, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.URL, e.Message)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError means the remote answered with a success
// status but the body did not decode into the expected shape. For
// recovery purposes it is treated exactly like a NetworkError.
type MalformedResponseError struct {
	Op  string
	URL string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s %s: malformed response: %v", e.Op, e.URL, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// NotFoundError is returned on by-id misses when strict reads are
// enabled; the default policy substitutes a synthetic record instead.
type NotFoundError struct {
	Bucket string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s record with id %q", e.Bucket, e.ID)
}
