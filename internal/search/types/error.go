package types

import (
	"errors"
	"fmt"
)

// ErrBadPayload marks a response body that is neither a reserved sentinel
// text nor well-formed JSON.
var ErrBadPayload = errors.New("malformed backend payload")

// BackendError wraps a failed exchange with the search backend.
type BackendError struct {
	Endpoint string
	Code     string
	Message  string
	Err      error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Endpoint, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Endpoint, e.Code, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
