package enem

import "fmt"

// StatusError reports a non-2xx API response, surfaced once the retry budget
// for transient statuses is spent. Body carries the raw response text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a connection-level failure: DNS resolution, refused
// connections, timeouts, TLS handshakes.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
