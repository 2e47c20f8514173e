package sources

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is wrapped when an upstream body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed upstream response")

// SourceError is a source-level failure: the fetch did not complete.
type SourceError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *SourceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewStatusError builds the error for a non-2xx upstream response.
func NewStatusError(source string, status int, body []byte) *SourceError {
	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return &SourceError{Source: source, StatusCode: status, Err: fmt.Errorf("unexpected response: %s", msg)}
}
