// Package store provides RecordStore implementations.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridgeline/campsite-engine/booking"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	records map[booking.ReservationID]booking.Reservation
}

func NewMemory() *Memory {
	return &Memory{records: make(map[booking.ReservationID]booking.Reservation)}
}

// Save stores the reservation, assigning a fresh id on first save.
func (m *Memory) Save(_ context.Context, r booking.Reservation) (booking.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = booking.ReservationID(uuid.NewString())
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	m.records[r.ID] = r
	return r, nil
}

func (m *Memory) FindByID(_ context.Context, id booking.ReservationID) (*booking.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (m *Memory) ListActive(_ context.Context) ([]booking.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var active []booking.Reservation
	for _, r := range m.records {
		if r.Status == booking.StatusActive {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Arrival.Before(active[j].Arrival)
	})
	return active, nil
}
