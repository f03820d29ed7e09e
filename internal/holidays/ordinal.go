package holidays

import (
	"time"
)

// NthWeekday returns the day of the month of the n-th given weekday
// (e.g. the 2nd Monday). The result is not checked against the month length.
func NthWeekday(year int, month time.Month, weekday time.Weekday, n int) int {
	first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday()

	// Days to add to the 1st to reach the first matching weekday
	offset := (int(weekday) - int(first) + 7) % 7

	return 1 + offset + 7*(n-1)
}
