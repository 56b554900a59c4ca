// utils/dates.go
package utils

import "time"

// Today returns the current date as YYYY-MM-DD, the format job completion
// and scheduled dates are stored in.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ClockMinute returns the current wall-clock time as HH:MM, the format
// reminder alarm times are stored in.
func ClockMinute() string {
	return time.Now().Format("15:04")
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
