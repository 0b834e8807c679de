// Package dates provides date parsing and range helpers for the ISO
// timestamps found in legislative open-data feeds.
package dates

import "time"

// DayLayout is the date-only layout used across the open-data formats.
const DayLayout = "2006-01-02"

// ParsePrefix extracts the calendar date from an ISO date or datetime
// string. It returns the zero time when the value is empty or does not
// start with a parseable date.
func ParsePrefix(s string) time.Time {
	if len(s) < len(DayLayout) {
		return time.Time{}
	}
	t, err := time.Parse(DayLayout, s[:len(DayLayout)])
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDay parses a strict YYYY-MM-DD value.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayLayout, s)
}

// Range is an inclusive date interval. A zero bound means unbounded on
// that side.
type Range struct {
	Since time.Time
	Until time.Time
}

// Contains reports whether d falls within the range. The zero time is
// treated as "no date information" and is always included, so records
// are never excluded for missing data.
func (r Range) Contains(d time.Time) bool {
	if d.IsZero() {
		return true
	}
	if !r.Since.IsZero() && d.Before(r.Since) {
		return false
	}
	if !r.Until.IsZero() && d.After(r.Until) {
		return false
	}
	return true
}

// IsZero reports whether both bounds are open.
func (r Range) IsZero() bool {
	return r.Since.IsZero() && r.Until.IsZero()
}
