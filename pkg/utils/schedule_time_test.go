package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDayIndex(t *testing.T) {
	start := date(2026, 3, 16)

	tests := []struct {
		name     string
		t        time.Time
		dayCount int
		want     int
	}{
		{"first day", date(2026, 3, 16), 3, 0},
		{"middle day", date(2026, 3, 17), 3, 1},
		{"last day", date(2026, 3, 18), 3, 2},
		{"before trip clamps to first", date(2026, 3, 10), 3, 0},
		{"after trip clamps to last", date(2026, 3, 25), 3, 2},
		{"zero time clamps to first", time.Time{}, 3, 0},
		{"time of day ignored", time.Date(2026, 3, 17, 23, 59, 0, 0, time.UTC), 3, 1},
		{"zone offset ignored", time.Date(2026, 3, 17, 1, 0, 0, 0, time.FixedZone("KST", 9*3600)), 3, 1},
		{"day count below one treated as one", date(2026, 3, 18), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveDayIndex(tt.t, start, tt.dayCount); got != tt.want {
				t.Errorf("ResolveDayIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTripDayCount(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2026, 3, 16), date(2026, 3, 16), 1},
		{"two nights three days", date(2026, 3, 16), date(2026, 3, 18), 3},
		{"end before start clamps to one", date(2026, 3, 18), date(2026, 3, 16), 1},
		{"zero times clamp to one", time.Time{}, time.Time{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripDayCount(tt.start, tt.end); got != tt.want {
				t.Errorf("TripDayCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveScheduleTime(t *testing.T) {
	const dayDate = "2026-03-16"

	tests := []struct {
		name    string
		raw     string
		ordinal int
		want    string
	}{
		{"full timestamp passes through", "2026-03-16 14:30:00", 0, "2026-03-16 14:30:00"},
		{"iso T joiner replaced", "2026-03-16T14:30:00", 0, "2026-03-16 14:30:00"},
		{"missing seconds appended", "2026-03-16 14:30", 0, "2026-03-16 14:30:00"},
		{"fractional seconds truncated", "2026-03-16T14:30:00.000Z", 0, "2026-03-16 14:30:00"},
		{"bare clock combined with day", "14:30", 0, "2026-03-16 14:30:00"},
		{"unrecognized falls back to morning", "afternoon", 2, "2026-03-16 09:00:00"},
		{"empty first activity", "", 0, "2026-03-16 09:00:00"},
		{"empty third activity staggered", "", 2, "2026-03-16 11:00:00"},
		{"garbage with separators falls back", "--::", 0, "2026-03-16 09:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveScheduleTime(tt.raw, dayDate, tt.ordinal)
			if got != tt.want {
				t.Errorf("ResolveScheduleTime(%q, %q, %d) = %q, want %q", tt.raw, dayDate, tt.ordinal, got, tt.want)
			}
			if len(got) != 19 {
				t.Errorf("ResolveScheduleTime length = %d, want 19", len(got))
			}
		})
	}
}

func TestResolveScheduleTimeStaggersUntimedDay(t *testing.T) {
	const dayDate = "2026-03-16"
	seen := map[string]bool{}
	for ordinal := 0; ordinal < 5; ordinal++ {
		got := ResolveScheduleTime("", dayDate, ordinal)
		if seen[got] {
			t.Fatalf("duplicate resolved time %q at ordinal %d", got, ordinal)
		}
		seen[got] = true
	}
}
