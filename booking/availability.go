/*
availability.go - Read-only scans of the campsite calendar

PURPOSE:
  Answers "which days are free" without engine-level locking. Scans may
  observe a calendar changing mid-flight; that weak-consistency window is
  accepted because availability is advisory - the authoritative conflict
  check happens again inside Create under the engine lock.
*/
package booking

import "github.com/shopspring/decimal"

// FreeDaysBetween returns every unclaimed day in the half-open window
// [from, to), after validating the window. Runs concurrently with writes.
func (e *Engine) FreeDaysBetween(from, to Day) ([]Day, error) {
	if err := e.rules.ValidateWindow(from, to); err != nil {
		return nil, err
	}
	return e.calendar.FreeDays(from, to), nil
}

// Occupancy summarizes how booked a window is.
type Occupancy struct {
	From       Day
	To         Day
	TotalDays  int
	FreeDays   int
	BookedDays int

	// Rate is BookedDays/TotalDays in [0, 1], rounded to 4 places.
	Rate decimal.Decimal
}

// OccupancySummary reports booked/free day counts and the occupancy rate
// for the half-open window [from, to). Same consistency bound as
// FreeDaysBetween.
func (e *Engine) OccupancySummary(from, to Day) (*Occupancy, error) {
	if err := e.rules.ValidateWindow(from, to); err != nil {
		return nil, err
	}

	free := e.calendar.FreeDays(from, to)
	total := DaysBetween(from, to)
	booked := total - len(free)

	rate := decimal.Zero
	if total > 0 {
		rate = decimal.NewFromInt(int64(booked)).
			Div(decimal.NewFromInt(int64(total))).
			Round(4)
	}

	return &Occupancy{
		From:       from,
		To:         to,
		TotalDays:  total,
		FreeDays:   len(free),
		BookedDays: booked,
		Rate:       rate,
	}, nil
}
