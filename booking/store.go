/*
store.go - Persistence interface for reservation records

PURPOSE:
  Defines the boundary between the engine and durable storage. The record
  store owns reservation metadata (identity, guest attributes, dates,
  status); the engine owns the in-memory calendar derived from it. The
  engine treats the store as synchronous and fast: it is the single external
  call allowed inside the engine's critical section.

IMPLEMENTATIONS:
  - store/sqlite:      production SQLite store
  - booking/store:     in-memory store for tests and development
*/
package booking

import "context"

// RecordStore persists reservation records.
type RecordStore interface {
	// Save persists the reservation and returns the stored representation.
	// An empty ID means first save: the store assigns one.
	Save(ctx context.Context, r Reservation) (Reservation, error)

	// FindByID returns the reservation, or (nil, nil) when absent.
	FindByID(ctx context.Context, id ReservationID) (*Reservation, error)

	// ListActive returns every active reservation ordered by arrival.
	// Used to rehydrate the calendar after a restart.
	ListActive(ctx context.Context) ([]Reservation, error)
}
