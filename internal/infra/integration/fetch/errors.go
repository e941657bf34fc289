package fetch

import (
	"errors"
	"fmt"
)

// RequestFailedError is returned by GetJSON when the upstream answers with a
// non-success status. Body carries the response text as received.
type RequestFailedError struct {
	URL    string
	Status int
	Body   string
}

func (e *RequestFailedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d em %s", e.Status, e.URL)
	}
	return fmt.Sprintf("HTTP %d em %s - %s", e.Status, e.URL, e.Body)
}

// IsRequestFailed reports whether err (or anything it wraps) is a RequestFailedError.
func IsRequestFailed(err error) bool {
	var rf *RequestFailedError
	return errors.As(err, &rf)
}
