package csvio

import "fmt"

// EncodingError reports that no candidate text encoding produced a
// parseable CSV. It is fatal for the affected file only.
type EncodingError struct {
	Path  string
	Cause error
}

func (e *EncodingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not decode CSV file %s with any supported encoding: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("could not decode CSV file %s with any supported encoding", e.Path)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// WriteError reports a failure to persist an output CSV after the atomic
// rename retries and the fallback path were both exhausted.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to write CSV %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to write CSV %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
