package rclone

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError reports any failed exchange with the daemon: a transport failure,
// a non-2xx status, or a response that does not have the expected shape.
type APIError struct {
	// Op names the operation, e.g. "list remotes".
	Op string
	// Status is the HTTP status code, or 0 when no response was read.
	Status int
	// Body is the raw response body of a non-2xx reply.
	Body string
	// Message overrides the rendered detail when set.
	Message string
	Err     error

	transport bool
}

func (e *APIError) Error() string {
	var detail string
	switch {
	case e.Message != "":
		detail = e.Message
	case strings.TrimSpace(e.Body) != "":
		detail = strings.TrimSpace(e.Body)
	case e.Status != 0:
		detail = fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		detail = e.Err.Error()
	default:
		detail = "unknown error"
	}
	return fmt.Sprintf("failed to %s: %s", e.Op, detail)
}

func (e *APIError) Unwrap() error { return e.Err }

// Unreachable reports whether the daemon could not be contacted at all.
func (e *APIError) Unreachable() bool { return e.transport }

// IsUnreachable reports whether err carries an APIError for a transport failure.
func IsUnreachable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Unreachable()
	}
	return false
}
