package utils

import (
	"fmt"
	"strings"
	"time"
)

// Canonical persisted form for every schedule timestamp, 19 characters.
const ScheduleTimeLayout = "2006-01-02 15:04:05"

// DateOnlyLayout is the calendar-date half of ScheduleTimeLayout.
const DateOnlyLayout = "2006-01-02"

// ResolveDayIndex maps an absolute date onto a zero-based trip-day index.
// The difference is taken between UTC calendar dates with the time of day
// stripped, so DST and zone offsets cannot skew the day boundary. Out of
// range or unusable dates clamp instead of failing: before the trip -> 0,
// after the trip -> last day.
func ResolveDayIndex(t time.Time, start time.Time, dayCount int) int {
	if dayCount < 1 {
		dayCount = 1
	}
	if t.IsZero() || start.IsZero() {
		return 0
	}
	a := utcDate(t)
	s := utcDate(start)
	idx := int(a.Sub(s).Hours() / 24)
	if idx < 0 {
		return 0
	}
	if idx >= dayCount {
		return dayCount - 1
	}
	return idx
}

// TripDayCount returns the inclusive day span between two dates, never less
// than one.
func TripDayCount(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}
	days := int(utcDate(end).Sub(utcDate(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveScheduleTime turns whatever time hint the generator produced into
// the canonical 19-character "YYYY-MM-DD HH:MM:SS" string.
//
// The ladder, in order:
//  1. date + time separators present: already a full timestamp; "T" joiners
//     become a space, seconds are appended when missing, anything longer is
//     truncated.
//  2. time separator only ("14:30"): combined with the day's date.
//  3. present but unrecognized: the day's date at 09:00:00.
//  4. absent: 09:00 plus one hour per activity ordinal, so untimed
//     activities keep their original relative order within the day.
func ResolveScheduleTime(raw string, dayDate string, ordinal int) string {
	raw = strings.TrimSpace(raw)

	var resolved string
	switch {
	case raw == "":
		hour := 9 + ordinal
		resolved = fmt.Sprintf("%s %02d:00:00", dayDate, hour)
	case strings.Contains(raw, "-") && strings.Contains(raw, ":"):
		resolved = strings.Replace(raw, "T", " ", 1)
	case strings.Contains(raw, ":"):
		resolved = dayDate + " " + raw + ":00"
	default:
		resolved = dayDate + " 09:00:00"
	}

	if len(resolved) == 16 {
		// "YYYY-MM-DD HH:MM" without seconds
		resolved += ":00"
	}
	if len(resolved) > 19 {
		resolved = resolved[:19]
	}
	if len(resolved) != 19 {
		resolved = dayDate + " 09:00:00"
	}
	return resolved
}
