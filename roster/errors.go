/*
errors.go - Error types for the roster engine

PURPOSE:
  The generator has exactly one hard failure mode: a missing or inverted
  date range. Every other anomaly (duplicate requests, missing templates,
  a stalled fill pass) degrades to REST instead of aborting, because a
  partially-reasonable roster is more useful to a human scheduler than no
  roster at all. Collaborator packages add their own storage errors on top.

USAGE:
  Callers branch with errors.Is:

    if errors.Is(err, roster.ErrInvalidRange) {
        // 400, no partial output
    }

SEE ALSO:
  - engine.go: The only producer of ErrInvalidRange
  - store/sqlite: Storage-level errors
*/
package roster

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when the generation range is missing or
	// inverted. This is the generator's only hard error.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrEmployeeNotFound is returned by stores for unknown employee ids.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateRequest is returned by stores when a shift request
	// already exists for the same employee and date.
	ErrDuplicateRequest = errors.New("request already exists for this date")

	// ErrHolidayNotFound is returned by stores for unknown holiday dates.
	ErrHolidayNotFound = errors.New("company holiday not found")

	// ErrShiftNotFound is returned by stores for unknown shift ids.
	ErrShiftNotFound = errors.New("shift not found")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// RangeError carries the offending endpoints of an invalid range.
type RangeError struct {
	Start Date
	End   Date
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid date range: start %s, end %s", e.Start, e.End)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrDuplicateRequest)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrHolidayNotFound) ||
		errors.Is(err, ErrShiftNotFound)
}
