/*
engine.go - Atomic create/update/cancel for the shared campsite calendar

PURPOSE:
  Engine orchestrates Rules, Calendar and the RecordStore to implement the
  reservation lifecycle. It owns the serialization discipline: every
  mutating operation runs its conflict-check-then-claim sequence under one
  exclusive mutex, so two concurrent creates for overlapping ranges can
  never both pass the conflict check (the classic check-then-act race).

CRITICAL SECTION:
  lock -> lookup -> conflict check -> persist -> claim/release -> unlock

  Booking volume for one campsite is low and the section contains no I/O
  beyond the single record-store call, so one mutex is the whole story.
  Reads (FindByID, FreeDaysBetween) never take it.

ORDERING:
  The record is persisted BEFORE the calendar is touched. A failed store
  write therefore leaves both sides unchanged: no claim without a persisted
  record, and no persisted change without its claim following immediately
  inside the same critical section.

SEE ALSO:
  - availability.go: lock-free read path
  - rules.go:        validation applied before the lock is taken
*/
package booking

import (
	"context"
	"fmt"
	"sync"
)

// Engine is the single writer for the campsite calendar.
type Engine struct {
	mu       sync.Mutex
	calendar *Calendar
	rules    *Rules
	records  RecordStore
}

func NewEngine(records RecordStore, rules *Rules) *Engine {
	return &Engine{
		calendar: NewCalendar(),
		rules:    rules,
		records:  records,
	}
}

// Rules exposes the engine's validation rules, e.g. for the transport
// layer's default availability window.
func (e *Engine) Rules() *Rules { return e.rules }

// Restore rebuilds calendar claims from the record store's active
// reservations. Call once at startup, before serving requests.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	active, err := e.records.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("load active reservations: %w", err)
	}
	for _, r := range active {
		e.calendar.Claim(r.Days(), r.ID)
	}
	return nil
}

// Create validates the candidate range, checks it against the calendar and
// persists a new active reservation. Either the whole create succeeds
// (record persisted, days claimed) or nothing changes.
func (e *Engine) Create(ctx context.Context, candidate Reservation) (*Reservation, error) {
	if err := e.rules.ValidateStay(candidate.Arrival, candidate.Departure); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	days := DaysIn(candidate.Arrival, candidate.Departure)
	if conflicts := e.calendar.ConflictsFor(days, ""); len(conflicts) > 0 {
		return nil, &ConflictError{Day: conflicts[0]}
	}

	candidate.ID = ""
	candidate.Status = StatusActive
	saved, err := e.records.Save(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	e.calendar.Claim(days, saved.ID)
	return &saved, nil
}

// Update replaces the reservation's date range in place. The release of the
// old days and the claim of the new ones happen atomically with respect to
// every other caller.
func (e *Engine) Update(ctx context.Context, id ReservationID, arrival, departure Day) (*Reservation, error) {
	if err := e.rules.ValidateStay(arrival, departure); err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.records.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if current == nil {
		return nil, &NotFoundError{ID: id}
	}
	if current.IsCancelled() {
		return nil, &StateError{ID: id}
	}

	next := DaysIn(arrival, departure)
	if conflicts := e.calendar.ConflictsFor(next, id); len(conflicts) > 0 {
		return nil, &ConflictError{Day: conflicts[0]}
	}

	updated := *current
	updated.Arrival = arrival
	updated.Departure = departure
	saved, err := e.records.Save(ctx, updated)
	if err != nil {
		// Calendar untouched: the old claim still stands.
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	e.calendar.Reclaim(current.Days(), next, saved.ID)
	return &saved, nil
}

// Cancel transitions the reservation to its terminal state and releases its
// claimed days. Cancelling twice fails with a StateError every time.
func (e *Engine) Cancel(ctx context.Context, id ReservationID) (*Reservation, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.records.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if current == nil {
		return nil, &NotFoundError{ID: id}
	}
	if current.IsCancelled() {
		return nil, &StateError{ID: id}
	}

	cancelled := *current
	cancelled.Status = StatusCancelled
	saved, err := e.records.Save(ctx, cancelled)
	if err != nil {
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	e.calendar.Release(current.Days())
	return &saved, nil
}

// Snapshot returns a copy of the current calendar claims keyed by day.
// Read-only; useful for diagnostics and invariant checks.
func (e *Engine) Snapshot() map[Day]ReservationID {
	return e.calendar.Snapshot()
}

// FindByID is a pass-through read; it does not take the engine lock.
func (e *Engine) FindByID(ctx context.Context, id ReservationID) (*Reservation, error) {
	r, err := e.records.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load reservation: %w", err)
	}
	if r == nil {
		return nil, &NotFoundError{ID: id}
	}
	return r, nil
}
