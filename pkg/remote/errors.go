package remote

import (
	"errors"
	"fmt"
)

// ErrNoConnection indicates the connectivity probe failed, no request was made
var ErrNoConnection = errors.New("no connection")

// StatusError is returned when the source answers with a non-200 status.
// Body carries the raw response payload so callers can surface the server message.
type StatusError struct {
	Code int
	Body string
}

// Error returns the status code and the server message if one was sent
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code: %d, body: %q", e.Code, e.Body)
}
