package procurement

import (
	"errors"
	"fmt"
)

// MsgNoPlanData is the advisory returned with an empty result when
// the requested window has no plan entries. Not an error.
const MsgNoPlanData = "no menu plan covers the requested window; generate a menu plan first"

// ValidationError rejects a malformed request before any I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
