package booking

import (
	"time"
)

// =============================================================================
// DAY - Day-granularity time point (the atomic unit of allocation)
// =============================================================================

// Day is a calendar date at day granularity, normalized to midnight UTC.
// It is the unit the campsite calendar is allocated in: a reservation claims
// whole days, never fractions of one.
type Day struct {
	Time time.Time
}

// Clock supplies "now" so validation rules can be tested deterministically.
type Clock func() time.Time

// Constructors
func NewDay(year int, month time.Month, day int) Day {
	return Day{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DayOf truncates an instant to its UTC calendar date.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return NewDay(u.Year(), u.Month(), u.Day())
}

// ParseDay parses a date in 2006-01-02 form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// Comparison
func (d Day) Before(other Day) bool { return d.Time.Before(other.Time) }
func (d Day) After(other Day) bool  { return d.Time.After(other.Time) }
func (d Day) Equal(other Day) bool  { return d.Time.Equal(other.Time) }
func (d Day) IsZero() bool          { return d.Time.IsZero() }

// Arithmetic
func (d Day) AddDays(n int) Day   { return Day{Time: d.Time.AddDate(0, 0, n)} }
func (d Day) AddMonths(n int) Day { return Day{Time: d.Time.AddDate(0, n, 0)} }

// At combines the date with an hour of day, e.g. the check-in time.
func (d Day) At(hour int) time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), hour, 0, 0, 0, time.UTC)
}

func (d Day) String() string { return d.Time.Format("2006-01-02") }

// DaysBetween returns the number of whole days from one date to another.
// Negative if to precedes from.
func DaysBetween(from, to Day) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// DaysIn enumerates the half-open range [from, to), stepping one calendar day
// at a time from arrival up to but excluding departure. Every call site that
// claims, releases, or conflict-checks a range goes through this single
// helper, so the half-open boundary cannot drift between operations: the
// departure day is a checkout day and stays bookable by the next guest.
func DaysIn(from, to Day) []Day {
	if !from.Before(to) {
		return nil
	}
	days := make([]Day, 0, DaysBetween(from, to))
	for d := from; d.Before(to); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}
