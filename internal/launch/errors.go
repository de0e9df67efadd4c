package launch

import (
	"errors"
	"fmt"
)

// Sentinel errors for launch resolution and collection access.
var (
	// ErrUnparseableTimestamp indicates a time value that matches none of the
	// recognized layouts.
	ErrUnparseableTimestamp = errors.New("unparseable timestamp")
	// ErrIndexRange indicates slice bounds outside the collection.
	ErrIndexRange = errors.New("index out of range")
)

// TimestampError names the time string that failed to parse.
type TimestampError struct {
	Value string
}

// Error returns the failure with the offending value quoted.
func (e *TimestampError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnparseableTimestamp, e.Value)
}

// Unwrap returns ErrUnparseableTimestamp.
func (e *TimestampError) Unwrap() error {
	return ErrUnparseableTimestamp
}

// SourceError ties a fatal parse failure to its input file and raw block.
type SourceError struct {
	Source string // file name or other input label
	Block  string // raw block text, empty when the failure is not block-specific
	Err    error
}

// Error returns the failure prefixed with its source, followed by the raw
// block when one is known.
func (e *SourceError) Error() string {
	if e.Block == "" {
		return e.Source + ": " + e.Err.Error()
	}
	return e.Source + ": " + e.Err.Error() + "\n--- block ---\n" + e.Block
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *SourceError) Unwrap() error {
	return e.Err
}
