package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField matches every *ValidationError via errors.Is.
	ErrMissingField = errors.New("entry: missing compulsory field")
	// ErrNotPersisted is returned when deleting an entry that does not exist
	// on the server.
	ErrNotPersisted = errors.New("entry: entry has not been persisted")
	// ErrNoTransport is returned when persisting an entry without a transport.
	ErrNoTransport = errors.New("entry: no transport configured")
	// ErrRename is returned by transports asked to modify the dn attribute.
	ErrRename = errors.New("entry: changing the dn requires a modify DN operation")
)

// ValidationError reports a required attribute that is null or absent.
type ValidationError struct {
	Field string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "entry: " + FormatMissingFieldError(e.Field)
}

// Is makes errors.Is(err, ErrMissingField) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingField
}

// FormatMissingFieldError returns the message used for a missing required
// field, lower case like other Go error strings.
func FormatMissingFieldError(name string) string {
	return fmt.Sprintf("missing compulsory field [%s]", name)
}
