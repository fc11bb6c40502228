package schedule

import (
	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
)

// TableAvailability tags one physical table with whether it is free for a
// candidate interval.
type TableAvailability struct {
	Table     room.Table
	Available bool
}

// ComputeAvailability marks every table free or occupied for a prospective
// reservation at candidateTime for duration minutes on date.
//
// A table is occupied when it is named by any active reservation on the same
// date whose interval overlaps the candidate's (half-open; touching
// endpoints stay free). Cancelled reservations never block, and neither does
// the reservation identified by excludeID, since callers pass the reservation
// being edited so it does not conflict with itself. Runs in
// O(tables x reservations); both are small at restaurant scale.
func ComputeAvailability(
	tables []room.Table,
	reservations []reservation.Reservation,
	date string,
	candidateTime string,
	duration int,
	excludeID uuid.UUID,
) ([]TableAvailability, error) {
	candidateStart, err := ParseClock(candidateTime)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		duration = reservation.DefaultDuration
	}
	candidateEnd := candidateStart + duration

	result := make([]TableAvailability, len(tables))
	for i, t := range tables {
		result[i] = TableAvailability{Table: t, Available: true}
	}

	for i := range reservations {
		res := &reservations[i]
		if res.ID == excludeID {
			continue
		}
		if res.Date != date || !res.Status.Active() || res.Tables == "" {
			continue
		}

		resStart, err := ParseClock(res.Time)
		if err != nil {
			// A malformed stored time cannot be matched against; skip the
			// record rather than poisoning the whole calendar.
			continue
		}
		resEnd := resStart + res.EffectiveDuration()

		if !Overlaps(candidateStart, candidateEnd, resStart, resEnd) {
			continue
		}

		for _, name := range res.TableNames() {
			for j := range result {
				if result[j].Table.Name == name {
					result[j].Available = false
				}
			}
		}
	}

	return result, nil
}
