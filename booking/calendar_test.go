package booking_test

import (
	"testing"
	"time"

	"github.com/ridgeline/campsite-engine/booking"
)

// =============================================================================
// CALENDAR TESTS - claim map semantics in isolation
// =============================================================================

func date(y int, m time.Month, d int) booking.Day {
	return booking.NewDay(y, m, d)
}

func TestCalendar_ClaimAndQuery(t *testing.T) {
	cal := booking.NewCalendar()

	days := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 13))
	if len(days) != 3 {
		t.Fatalf("expected 3 days in [Jan 10, Jan 13), got %d", len(days))
	}

	cal.Claim(days, "res-1")

	for _, d := range days {
		if cal.IsFree(d) {
			t.Errorf("day %s should be claimed", d)
		}
	}
	if !cal.IsFree(date(2024, time.January, 13)) {
		t.Error("departure day Jan 13 must stay free")
	}
}

func TestCalendar_Release(t *testing.T) {
	cal := booking.NewCalendar()
	days := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 12))

	cal.Claim(days, "res-1")
	cal.Release(days)

	if cal.Len() != 0 {
		t.Fatalf("expected empty calendar after release, got %d claims", cal.Len())
	}
}

func TestCalendar_ConflictsFor_ExcludesOwnClaims(t *testing.T) {
	// GIVEN: res-1 holds Jan 10-11, res-2 holds Jan 12
	cal := booking.NewCalendar()
	cal.Claim(booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 12)), "res-1")
	cal.Claim([]booking.Day{date(2024, time.January, 12)}, "res-2")

	// WHEN: res-1 probes Jan 10-13 excluding itself
	probe := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 13))
	conflicts := cal.ConflictsFor(probe, "res-1")

	// THEN: Only res-2's day conflicts
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if !conflicts[0].Equal(date(2024, time.January, 12)) {
		t.Errorf("expected conflict on Jan 12, got %s", conflicts[0])
	}
}

func TestCalendar_ConflictsFor_NoExclusion(t *testing.T) {
	cal := booking.NewCalendar()
	cal.Claim([]booking.Day{date(2024, time.January, 10)}, "res-1")

	probe := booking.DaysIn(date(2024, time.January, 9), date(2024, time.January, 12))
	conflicts := cal.ConflictsFor(probe, "")

	if len(conflicts) != 1 || !conflicts[0].Equal(date(2024, time.January, 10)) {
		t.Fatalf("expected a single conflict on Jan 10, got %v", conflicts)
	}
}

func TestCalendar_ConflictsFor_ChronologicalOrder(t *testing.T) {
	cal := booking.NewCalendar()
	cal.Claim([]booking.Day{date(2024, time.January, 11), date(2024, time.January, 13)}, "res-1")

	probe := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 14))
	conflicts := cal.ConflictsFor(probe, "")

	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(conflicts))
	}
	if !conflicts[0].Equal(date(2024, time.January, 11)) {
		t.Errorf("first conflict should be the earliest day, got %s", conflicts[0])
	}
}

func TestCalendar_Reclaim_SwapsRangesAtomically(t *testing.T) {
	cal := booking.NewCalendar()
	old := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 12))
	next := booking.DaysIn(date(2024, time.January, 20), date(2024, time.January, 22))

	cal.Claim(old, "res-1")
	cal.Reclaim(old, next, "res-1")

	if cal.Len() != 2 {
		t.Fatalf("expected 2 claims after reclaim, got %d", cal.Len())
	}
	for _, d := range old {
		if !cal.IsFree(d) {
			t.Errorf("old day %s should be free", d)
		}
	}
	for _, d := range next {
		if cal.IsFree(d) {
			t.Errorf("new day %s should be claimed", d)
		}
	}
}

func TestCalendar_FreeDays(t *testing.T) {
	cal := booking.NewCalendar()
	cal.Claim([]booking.Day{date(2024, time.January, 11)}, "res-1")

	free := cal.FreeDays(date(2024, time.January, 10), date(2024, time.January, 13))

	if len(free) != 2 {
		t.Fatalf("expected 2 free days, got %d", len(free))
	}
	if !free[0].Equal(date(2024, time.January, 10)) || !free[1].Equal(date(2024, time.January, 12)) {
		t.Errorf("unexpected free days: %v", free)
	}
}

// =============================================================================
// DAY ENUMERATION
// =============================================================================

func TestDaysIn_HalfOpen(t *testing.T) {
	days := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 13))

	want := []booking.Day{
		date(2024, time.January, 10),
		date(2024, time.January, 11),
		date(2024, time.January, 12),
	}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i], days[i])
		}
	}
}

func TestDaysIn_EmptyAndInvertedRanges(t *testing.T) {
	if days := booking.DaysIn(date(2024, time.January, 10), date(2024, time.January, 10)); days != nil {
		t.Errorf("zero-length range should enumerate nothing, got %v", days)
	}
	if days := booking.DaysIn(date(2024, time.January, 13), date(2024, time.January, 10)); days != nil {
		t.Errorf("inverted range should enumerate nothing, got %v", days)
	}
}

func TestDaysIn_CrossesMonthBoundary(t *testing.T) {
	days := booking.DaysIn(date(2024, time.January, 31), date(2024, time.February, 2))

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if !days[1].Equal(date(2024, time.February, 1)) {
		t.Errorf("expected Feb 1, got %s", days[1])
	}
}
