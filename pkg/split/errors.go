package split

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes an operator can act on. They are
// wrapped with fmt.Errorf("%w: ...") at the point of failure so callers can
// match them with errors.Is while still seeing the offending path or count.
var (
	// ErrSourceNotFound means the source directory is missing or unreadable.
	ErrSourceNotFound = errors.New("source directory not found")

	// ErrEmptySource means the source directory contains no subjects at all.
	ErrEmptySource = errors.New("source directory has no subjects")

	// ErrInsufficientSubjects means there are fewer subjects than requested
	// parts, so at least one destination tree would end up empty.
	ErrInsufficientSubjects = errors.New("fewer subjects than requested parts")

	// ErrDestinationUnwritable means a destination tree could not be created.
	ErrDestinationUnwritable = errors.New("destination is not writable")
)

// CopyError reports the failure of one subject's tree copy. The run stops on
// the first CopyError unless continue-on-error was requested.
type CopyError struct {
	Subject string
	Err     error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy of subject %q failed: %v", e.Subject, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
