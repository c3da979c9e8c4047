/*
errors.go - Centralized error types for the booking engine

PURPOSE:
  All error kinds in one place for consistency and discoverability.
  The transport layer maps these to HTTP statuses; the engine itself never
  retries or recovers silently.

ERROR CATEGORIES:
  1. Validation errors - the requested date range breaks a business rule
  2. Conflict errors   - the range overlaps another active reservation
  3. Not-found errors  - the referenced reservation does not exist
  4. State errors      - the reservation is already cancelled

USAGE:
  Callers can branch on sentinels:

    if errors.Is(err, booking.ErrRangeConflict) {
        // suggest different dates
    }

  or extract details:

    var conflict *booking.ConflictError
    if errors.As(err, &conflict) {
        fmt.Println("first conflicting day:", conflict.Day)
    }
*/
package booking

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidRange is returned when a requested date range violates a
	// reservation or availability-window rule.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRangeConflict is returned when requested days overlap an existing
	// active reservation. Retrying the same input fails identically until
	// the calendar changes.
	ErrRangeConflict = errors.New("date range conflict")

	// ErrReservationNotFound is returned when an operation references a
	// reservation id absent from the record store.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrReservationCancelled is returned when update or cancel targets a
	// reservation that already reached its terminal state.
	ErrReservationCancelled = errors.New("reservation already cancelled")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports every rule the requested range violated, not just
// the first, so the caller can fix all of them in one round trip.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid date range: %s", strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRange }

// ConflictError identifies the first conflicting day found during
// enumeration, in chronological order from the candidate's arrival date.
type ConflictError struct {
	Day Day
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested range of dates is in conflict on day %s", e.Day)
}

func (e *ConflictError) Unwrap() error { return ErrRangeConflict }

// NotFoundError identifies the missing reservation.
type NotFoundError struct {
	ID ReservationID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("couldn't find reservation with id %s", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrReservationNotFound }

// StateError reports an operation against a terminal reservation.
type StateError struct {
	ID ReservationID
}

func (e *StateError) Error() string {
	return fmt.Sprintf("reservation with id %s already cancelled", e.ID)
}

func (e *StateError) Unwrap() error { return ErrReservationCancelled }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input
// rather than an internal failure.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrRangeConflict) ||
		errors.Is(err, ErrReservationCancelled)
}

// IsNotFound returns true if the error indicates a missing reservation.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrReservationNotFound)
}
