package requests

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MCBE-Utilities/BeRAPI/internal/model"
)

// ErrTransport matches every failure returned by the Manager
var ErrTransport = errors.New("request failed")

// Error is the uniform failure of a single request: a non-2xx status,
// a network error, an undecodable body or a missing identity
type Error struct {
	Method     string
	URL        string
	StatusCode int    // zero when no response was received
	Body       []byte // raw response body, if any
	Err        error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: HTTP %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, truncate(e.Body, 200))
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
}

// Unwrap exposes ErrTransport, model.ErrNotFound for 404s, and the cause
func (e *Error) Unwrap() []error {
	errs := []error{ErrTransport}
	if e.StatusCode == http.StatusNotFound {
		errs = append(errs, model.ErrNotFound)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// StatusCode returns the HTTP status of a failed request, or zero if err is
// not a request error or no response was received
func StatusCode(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
