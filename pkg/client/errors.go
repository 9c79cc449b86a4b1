package client

import (
	"errors"
	"fmt"
	"net"
)

// ErrNotInitialized is returned when an operation is attempted on a client
// that was not built with New. Not reachable through normal construction.
var ErrNotInitialized = errors.New("campus client not initialized")

// APIError is returned when the platform responds with a non-2xx status.
// It carries the original status and body so callers can interpret the
// failure; this layer never reinterprets or recovers it.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("campus api %d on %s %s: %s", e.Status, e.Method, e.Path, string(e.Body))
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsTimeout reports whether err is a transport timeout, as opposed to a
// server-returned error. Timeouts are produced by the configured Timeout.
func IsTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
