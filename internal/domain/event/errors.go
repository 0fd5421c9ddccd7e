package event

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrMalformedField marks serialized event fields that cannot be safely
// decoded. Callers match it with errors.Is.
var ErrMalformedField = crerr.New("malformed event field")

// MalformedField wraps ErrMalformedField with the offending event
// identifier and field name so the failure is traceable to one row.
func MalformedField(eventID, field string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: event %s field %q", ErrMalformedField, eventID, field)
	}
	return fmt.Errorf("%w: event %s field %q: %w", ErrMalformedField, eventID, field, cause)
}
