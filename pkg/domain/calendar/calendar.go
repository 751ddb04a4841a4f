// Package calendar provides the day-keyed time axis the analytics
// packages operate on. Days are ISO strings ("2006-01-02") bucketed in
// the athlete's local timezone; every rolling-window computation works
// over a dense axis built here so averages always divide by the full
// window length.
package calendar

import "time"

// DayFormat is the canonical day key layout.
const DayFormat = "2006-01-02"

// Clock supplies "today". Injectable so tests can fix the current day
// and assert exact outputs.
type Clock func() time.Time

// SystemClock is the production clock.
func SystemClock() time.Time { return time.Now() }

// DayOf returns the local calendar day key for an instant.
func DayOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayFormat)
}

// Axis returns a dense day axis of length days ending on the local day
// of end, oldest first. Missing data for a day is represented
// explicitly by the consumer, never by skipping the day.
func Axis(end time.Time, days int, loc *time.Location) []string {
	if days <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	end = end.In(loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)
	axis := make([]string, days)
	for i := 0; i < days; i++ {
		axis[i] = last.AddDate(0, 0, i-days+1).Format(DayFormat)
	}
	return axis
}

// Parse converts a day key back to a midnight time in loc. Malformed
// keys return the zero time and false rather than an error; callers
// treat them as absent.
func Parse(day string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DayFormat, day, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Location resolves an IANA timezone name, falling back to UTC for
// empty or unknown names.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
