// Package schedule implements the reservation scheduling engine: bookable
// time-slot generation from recurring capacity rules and closed-day
// exceptions, table availability against existing assignments, and the
// capacity-fit classification shown in the table picker.
//
// Everything in this package is a deterministic function over its inputs.
// Records are supplied fresh by the caller on every call; nothing is cached.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("invalid wall-clock time")

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes since midnight. "HH:MM:SS" values
// coming out of the store are truncated to minute precision.
func ParseClock(s string) (int, error) {
	if len(s) > 5 {
		s = s[:5]
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour*60 + minute, nil
}

// FormatClock is the inverse of ParseClock. Out-of-range input wraps around
// midnight rather than failing; slot arithmetic never produces it, but a
// stored duration pushing past 24:00 must not crash the calendar.
func FormatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count: a table freed
// at 21:00 is bookable at 21:00.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}
