package wiki

import (
	"errors"
	"fmt"
)

// ErrPageUnavailable marks a failed page-source lookup. Callers treat it
// as "no coordinates", never as a request-level failure.
var ErrPageUnavailable = errors.New("page source unavailable")

// FetchError reports a failed day-page fetch. It aborts the whole
// day-request; no partial result is produced.
type FetchError struct {
	URL    string
	Status int // 0 when the request never completed
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
