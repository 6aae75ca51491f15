package routines

import "time"

// WeekStart returns the Monday of t's ISO week, in UTC at midnight.
// Sunday belongs to the week that started six days earlier, so it rolls
// back to the previous Monday.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -offset)
}

// WeekStartDate is WeekStart formatted the way the services key
// snapshots: an ISO date with no time part.
func WeekStartDate(t time.Time) string {
	return WeekStart(t).Format(time.DateOnly)
}
