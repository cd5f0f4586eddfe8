package rmv

import "fmt"

// ErrorKind classifies provider failures for the layers above.
type ErrorKind int

const (
	// KindUnavailable covers network errors, auth rejections and rate
	// limiting. Callers may retry these with backoff.
	KindUnavailable ErrorKind = iota
	// KindProtocol covers malformed or unparseable payloads. Not retryable.
	KindProtocol
)

// APIError is the typed failure returned by the client. It names the endpoint
// but never the full request URL, since the URL carries the access key.
type APIError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("rmv %s: HTTP %d", e.Endpoint, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("rmv %s: %v", e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("rmv %s: request failed", e.Endpoint)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}
