package dictionary

import "fmt"

// NotFoundError means the upstream confirmed the term does not exist.
// It is surfaced verbatim for user display and never retried.
type NotFoundError struct {
	Word string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no definitions found for %q", e.Word)
}

// NetworkError means the upstream was unreachable or answered with an
// unexpected status. Retry policy, if any, belongs to the caller.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dictionary request %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("dictionary request %s failed: unexpected status %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
