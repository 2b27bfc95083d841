package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// IsValidClock reports whether s is a wall-clock time in HH:MM form.
// A single-digit hour is accepted.
func IsValidClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ClockMinutes converts a wall-clock time into minutes since midnight.
// Stored values in HH:MM:SS form are accepted; seconds are ignored.
func ClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", s)
	}
	return hours*60 + minutes, nil
}

// anchorClock places a wall-clock time on the given calendar date.
func anchorClock(date time.Time, clock string) (time.Time, error) {
	minutes, err := ClockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// FinishesAfter anchors both times to the same date and reports whether
// finish is strictly after start.
func FinishesAfter(anchor time.Time, start, finish string) bool {
	from, err := anchorClock(anchor, start)
	if err != nil {
		return false
	}
	to, err := anchorClock(anchor, finish)
	if err != nil {
		return false
	}
	return to.After(from)
}
