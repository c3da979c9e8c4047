/*
Package booking provides the reservation allocation engine for a single
shared campsite.

PURPOSE:
  This package contains the core calendar of claimed days, the business rules
  that gate which date ranges are bookable, and the engine that performs
  atomic create/update/cancel operations against both the calendar and the
  durable record store. There is exactly one shared resource: the campsite
  calendar. The invariant the whole package exists to protect is that at any
  instant a calendar day belongs to at most one active reservation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Day:          A calendar date at day granularity (see day.go)
  - Reservation:  Guest identity plus a half-open [arrival, departure) stay
  - Status:       Active or Cancelled; Cancelled is terminal

HALF-OPEN INTERVALS:
  A stay [arrival, departure) occupies the arrival day and every day up to
  but excluding the departure day. Checkout day and the next guest's
  check-in day may be the same date.

DESIGN PRINCIPLES:
  1. One calendar: claim bookkeeping lives in Calendar and nowhere else
  2. Single writer: all mutating operations serialize through Engine
  3. Persist before claim: a failed record-store write never leaves a claim
  4. Reads stay cheap: availability scans never take the engine lock

SEE ALSO:
  - calendar.go: Day-to-reservation claim map
  - rules.go:    Stay and availability-window validation
  - engine.go:   Create/Update/Cancel orchestration
*/
package booking

import "time"

// =============================================================================
// IDENTIFIERS
// =============================================================================

// ReservationID is an opaque identifier assigned by the record store on
// first save.
type ReservationID string

// =============================================================================
// STATUS - Reservation lifecycle
// =============================================================================

type Status string

const (
	// StatusActive is the state of every successfully created reservation.
	StatusActive Status = "active"

	// StatusCancelled is terminal. A cancelled reservation keeps its record
	// but holds no calendar claims and is never reactivated.
	StatusCancelled Status = "cancelled"
)

// =============================================================================
// RESERVATION
// =============================================================================

// Reservation is a guest's claim on the campsite for the half-open range
// [Arrival, Departure). Guest attributes are validated at the transport
// boundary, not here.
type Reservation struct {
	ID       ReservationID
	FullName string
	Email    string

	Arrival   Day // first occupied day
	Departure Day // checkout day, not occupied

	Status Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Days enumerates every day the reservation occupies.
func (r Reservation) Days() []Day {
	return DaysIn(r.Arrival, r.Departure)
}

// Nights is the length of the stay in days.
func (r Reservation) Nights() int {
	return DaysBetween(r.Arrival, r.Departure)
}

func (r Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}
