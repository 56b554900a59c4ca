package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	start := time.Date(2024, 6, 1, 23, 59, 0, 0, loc)
	end := time.Date(2024, 6, 3, 0, 1, 0, 0, loc)

	if got := DaysBetween(start, end); got != 2 {
		t.Errorf("DaysBetween = %d, want 2", got)
	}
	if got := DaysBetween(end, start); got != -2 {
		t.Errorf("reversed DaysBetween = %d, want -2", got)
	}
	if got := DaysBetween(start, start); got != 0 {
		t.Errorf("same day DaysBetween = %d, want 0", got)
	}
}
