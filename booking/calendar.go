/*
calendar.go - The day-to-reservation claim map

PURPOSE:
  Calendar owns the in-memory mapping from claimed day to reservation id.
  It is a pure data structure: no business rules, no conflict policy beyond
  answering "who holds this day". The Engine is its only mutator; availability
  queries read it concurrently through the internal RWMutex.

PRECONDITION CONTRACT:
  Claim does NOT re-check for conflicts. The caller must have already called
  ConflictsFor under the engine's exclusive lock. Claiming over a foreign
  claim silently overwrites - that is a programming error upstream, not a
  runtime condition this type defends against.

SEE ALSO:
  - engine.go:       the single writer
  - availability.go: lock-free-reader scans via FreeDays
*/
package booking

import "sync"

// Calendar maps each claimed day to the active reservation holding it.
// At most one reservation id per day, by construction of the map.
type Calendar struct {
	mu     sync.RWMutex
	claims map[Day]ReservationID
}

func NewCalendar() *Calendar {
	return &Calendar{claims: make(map[Day]ReservationID)}
}

// Claim inserts a mapping for each day to id.
// Precondition: the caller verified no conflicting claim exists.
func (c *Calendar) Claim(days []Day, id ReservationID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range days {
		c.claims[d] = id
	}
}

// Release removes mappings for the given days unconditionally.
func (c *Calendar) Release(days []Day) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range days {
		delete(c.claims, d)
	}
}

// Reclaim atomically releases prev and claims next for id. Readers never
// observe the calendar with the old days released but the new days not yet
// claimed; Engine.Update depends on this for its atomicity guarantee.
func (c *Calendar) Reclaim(prev, next []Day, id ReservationID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range prev {
		delete(c.claims, d)
	}
	for _, d := range next {
		c.claims[d] = id
	}
}

// ConflictsFor returns every day in days already claimed by a reservation
// other than exclude, preserving the order of the input enumeration.
// An empty exclude matches no claim, so every foreign claim conflicts;
// passing the reservation's own id lets a no-op date shift pass cleanly.
func (c *Calendar) ConflictsFor(days []Day, exclude ReservationID) []Day {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var conflicts []Day
	for _, d := range days {
		if owner, claimed := c.claims[d]; claimed && owner != exclude {
			conflicts = append(conflicts, d)
		}
	}
	return conflicts
}

// IsFree reports whether a day has no active claim.
func (c *Calendar) IsFree(day Day) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, claimed := c.claims[day]
	return !claimed
}

// FreeDays returns every unclaimed day in the half-open range [from, to).
func (c *Calendar) FreeDays(from, to Day) []Day {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var free []Day
	for _, d := range DaysIn(from, to) {
		if _, claimed := c.claims[d]; !claimed {
			free = append(free, d)
		}
	}
	return free
}

// Snapshot returns a copy of the current claim map.
func (c *Calendar) Snapshot() map[Day]ReservationID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Day]ReservationID, len(c.claims))
	for d, id := range c.claims {
		out[d] = id
	}
	return out
}

// Len returns the number of claimed days.
func (c *Calendar) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.claims)
}
