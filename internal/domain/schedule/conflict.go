package schedule

import (
	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

// HasTableConflict reports whether any of the requested table names is held
// by an active reservation overlapping [start, start+duration) on the same
// day. The reservation identified by excludeID is ignored so an edit never
// conflicts with itself. Stored times that fail to parse are skipped rather
// than treated as blocking.
func HasTableConflict(
	requestedTables []string,
	start, duration int,
	existing []reservation.Reservation,
	excludeID uuid.UUID,
) bool {
	if len(requestedTables) == 0 {
		return false
	}
	end := start + duration

	wanted := make(map[string]struct{}, len(requestedTables))
	for _, name := range requestedTables {
		wanted[name] = struct{}{}
	}

	for _, other := range existing {
		if other.ID == excludeID || !other.Status.Active() || other.Tables == "" {
			continue
		}
		otherStart, err := ParseClock(other.Time)
		if err != nil {
			continue
		}
		if !Overlaps(start, end, otherStart, otherStart+other.EffectiveDuration()) {
			continue
		}
		for _, name := range other.TableNames() {
			if _, ok := wanted[name]; ok {
				return true
			}
		}
	}
	return false
}
