package utils

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	ts := time.Date(2026, 8, 26, 14, 35, 12, 0, time.UTC)

	start := BeginningOfDay(ts)
	if start.Hour() != 0 || start.Day() != 26 {
		t.Errorf("BeginningOfDay = %v, want midnight of the 26th", start)
	}

	end := EndOfDay(ts)
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("EndOfDay = %v, want midnight of the 27th", end)
	}
}
