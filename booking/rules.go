/*
rules.go - Business-rule validation for requested date ranges

PURPOSE:
  Stateless validators over a proposed arrival/departure pair and over an
  availability query window, evaluated against the wall clock at request
  time. These rules gate which ranges are even eligible for booking before
  the engine looks at the calendar.

RESERVATION RULES:
  - arrival must differ from departure (no zero-length stay)
  - arrival must not follow departure
  - the stay spans at most MaxStayDays days
  - arrival (at check-in time) must be more than MinLeadTime ahead of now
  - arrival must be within MaxAdvanceMonths of now

AVAILABILITY WINDOW RULES (looser):
  - from must differ from to and precede it
  - neither end of the window may lie in the past

REPORTING:
  Every violated rule is collected into one ValidationError rather than
  stopping at the first, so a caller that sent a range that is both too long
  and too far out learns both facts in one round trip.
*/
package booking

import (
	"fmt"
	"time"
)

// =============================================================================
// CONFIG - Rule constants
// =============================================================================

// Config carries the booking constraints. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	// MaxStayDays is the maximum reservation span in days.
	MaxStayDays int

	// MinLeadTime is how far ahead of check-in a booking must arrive.
	MinLeadTime time.Duration

	// MaxAdvanceMonths is how far into the future an arrival may be.
	MaxAdvanceMonths int

	// CheckInHour and CheckOutHour are the UTC hours of day used when a
	// calendar date needs a day boundary (lead-time and advance checks).
	CheckInHour  int
	CheckOutHour int
}

// DefaultConfig mirrors the campsite's standing policy: stays of up to
// 3 days, booked at least 24 hours ahead and at most 1 month out, with
// noon check-in and checkout.
func DefaultConfig() Config {
	return Config{
		MaxStayDays:      3,
		MinLeadTime:      24 * time.Hour,
		MaxAdvanceMonths: 1,
		CheckInHour:      12,
		CheckOutHour:     12,
	}
}

// =============================================================================
// RULES - Request-time validators
// =============================================================================

// Rules validates requested ranges against Config. Now is injectable so
// tests can pin the clock; it defaults to time.Now.
type Rules struct {
	Config Config
	Now    Clock
}

func NewRules(cfg Config) *Rules {
	return &Rules{Config: cfg, Now: time.Now}
}

// ValidateStay checks a proposed reservation range and returns a
// ValidationError carrying every violated rule, or nil.
func (r *Rules) ValidateStay(arrival, departure Day) error {
	var violations []string

	if arrival.Equal(departure) {
		violations = append(violations, "arrival date cannot be equal to departure date")
	}
	if arrival.After(departure) {
		violations = append(violations, "arrival date cannot be after departure date")
	}
	if DaysBetween(arrival, departure) > r.Config.MaxStayDays {
		violations = append(violations,
			fmt.Sprintf("the campsite can be reserved for max %d days", r.Config.MaxStayDays))
	}

	now := r.Now().UTC()
	checkIn := arrival.At(r.Config.CheckInHour)
	if checkIn.Sub(now) <= r.Config.MinLeadTime {
		violations = append(violations,
			fmt.Sprintf("the campsite can be reserved minimum %d hour(s) ahead of arrival",
				int(r.Config.MinLeadTime.Hours())))
	}
	if !checkIn.AddDate(0, -r.Config.MaxAdvanceMonths, 0).Before(now) {
		violations = append(violations,
			fmt.Sprintf("the campsite can be reserved up to %d month(s) in advance",
				r.Config.MaxAdvanceMonths))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// ValidateWindow checks an availability query window. Looser than
// ValidateStay: only ordering and not-in-the-past.
func (r *Rules) ValidateWindow(from, to Day) error {
	var violations []string

	if from.Equal(to) {
		violations = append(violations, "start date should be different from end date")
	}
	if from.After(to) {
		violations = append(violations, "start date should be before end date")
	}

	today := DayOf(r.Now())
	if from.Before(today) {
		violations = append(violations, "start date should not be in the past")
	}
	if to.Before(today) {
		violations = append(violations, "end date should not be in the past")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// DefaultWindow is the availability window used when the caller does not
// supply one: from today through the end of the advance booking horizon.
func (r *Rules) DefaultWindow() (Day, Day) {
	today := DayOf(r.Now())
	return today, today.AddMonths(r.Config.MaxAdvanceMonths)
}
