package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("rule start time must be before end time")
	ErrInvalidInterval = errors.New("rule interval must be positive")
	ErrUnknownWeekday  = errors.New("unknown weekday name")
)

// weekdayNames maps time.Weekday (Sunday = 0) to the canonical names stored
// in capacity rules. The store has always carried German names; they are part
// of the persisted format, not a display concern.
var weekdayNames = [7]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// WeekdayName returns the canonical name for a civil date.
func WeekdayName(date time.Time) string {
	return weekdayNames[int(date.Weekday())]
}

func ValidWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}

// CapacityRule is a recurring weekly availability window. Capacity is the
// maximum covers for the window; it is informational and not enforced
// against actual guest counts. Multiple rules may cover the same weekday
// (separate lunch and dinner windows); their slot sets are unioned.
type CapacityRule struct {
	ID              uuid.UUID
	Days            []string
	StartTime       string
	EndTime         string
	Capacity        int
	IntervalMinutes int
	CreatedAt       time.Time
}

func (r *CapacityRule) AppliesOn(weekday string) bool {
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

func (r *CapacityRule) Validate() error {
	start, err := ParseClock(r.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseClock(r.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return ErrInvalidWindow
	}
	if r.IntervalMinutes <= 0 {
		return ErrInvalidInterval
	}
	for _, d := range r.Days {
		if !ValidWeekdayName(d) {
			return ErrUnknownWeekday
		}
	}
	return nil
}

// ClosedDay is a one-off calendar exception: the restaurant is fully closed
// on Date, regardless of any rule.
type ClosedDay struct {
	ID        uuid.UUID
	Date      string
	CreatedAt time.Time
}
