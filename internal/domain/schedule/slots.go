package schedule

import (
	"sort"
	"time"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

// AvailableSlots computes the bookable "HH:MM" start times for a date.
//
// A date listed as a closed day yields no slots no matter how many rules
// would otherwise apply. Otherwise every rule covering the date's weekday
// contributes starts at start, start+interval, ... strictly below its end
// time (half-open window; the last slot's own end may poke past it). The
// union is deduplicated and sorted ascending; lexicographic order is minute
// order for zero-padded clock strings.
func AvailableSlots(date string, rules []CapacityRule, closedDays []ClosedDay) ([]string, error) {
	for _, c := range closedDays {
		if c.Date == date {
			return nil, nil
		}
	}

	day, err := time.Parse(reservation.DateLayout, date)
	if err != nil {
		return nil, reservation.ErrInvalidDate
	}
	weekday := WeekdayName(day)

	seen := make(map[string]struct{})
	var slots []string
	for i := range rules {
		rule := &rules[i]
		if !rule.AppliesOn(weekday) {
			continue
		}

		start, err := ParseClock(rule.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := ParseClock(rule.EndTime)
		if err != nil {
			return nil, err
		}
		if rule.IntervalMinutes <= 0 {
			return nil, ErrInvalidInterval
		}

		for m := start; m < end; m += rule.IntervalMinutes {
			t := FormatClock(m)
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			slots = append(slots, t)
		}
	}

	sort.Strings(slots)
	return slots, nil
}

// PickDefaultTime chooses the slot a fresh booking form should preselect:
// for today, the first slot at or after the next whole hour; for any other
// date, the first slot. The second return is false when no slot qualifies.
func PickDefaultTime(date string, slots []string, now time.Time) (string, bool) {
	if len(slots) == 0 {
		return "", false
	}
	if date != now.Format(reservation.DateLayout) {
		return slots[0], true
	}

	nextHour := now.Hour() * 60
	if now.Minute() > 0 {
		nextHour += 60
	}
	for _, slot := range slots {
		m, err := ParseClock(slot)
		if err != nil {
			continue
		}
		if m >= nextHour {
			return slot, true
		}
	}
	return slots[0], true
}
