package calendar

import (
	"testing"
	"time"
)

func TestAxis_DenseAndOrdered(t *testing.T) {
	end := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	axis := Axis(end, 5, time.UTC)

	if len(axis) != 5 {
		t.Fatalf("expected 5 days, got %d", len(axis))
	}
	want := []string{"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09", "2026-03-10"}
	for i, day := range want {
		if axis[i] != day {
			t.Errorf("axis[%d] = %s, want %s", i, axis[i], day)
		}
	}
}

func TestAxis_CrossesMonthBoundary(t *testing.T) {
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	axis := Axis(end, 4, time.UTC)

	want := []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}
	for i, day := range want {
		if axis[i] != day {
			t.Errorf("axis[%d] = %s, want %s", i, axis[i], day)
		}
	}
}

func TestDayOf_UsesLocalDay(t *testing.T) {
	// 23:30 in UTC is already the next day in Auckland.
	auckland, err := time.LoadLocation("Pacific/Auckland")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	instant := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	if got := DayOf(instant, time.UTC); got != "2026-03-10" {
		t.Errorf("UTC day = %s, want 2026-03-10", got)
	}
	if got := DayOf(instant, auckland); got != "2026-03-11" {
		t.Errorf("Auckland day = %s, want 2026-03-11", got)
	}
}

func TestParse_MalformedIsAbsent(t *testing.T) {
	if _, ok := Parse("not-a-date", time.UTC); ok {
		t.Error("expected malformed day key to be treated as absent")
	}
	if _, ok := Parse("2026-03-10", time.UTC); !ok {
		t.Error("expected valid day key to parse")
	}
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	if Location("") != time.UTC {
		t.Error("empty name should resolve to UTC")
	}
	if Location("Not/AZone") != time.UTC {
		t.Error("unknown name should resolve to UTC")
	}
}
