// Package guest derives repeat-guest signals from the reservation log.
package guest

import (
	"strings"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

// History summarizes a guest's past reservations for the detail view.
type History struct {
	Visited   int `json:"visited"`
	NoShow    int `json:"noShow"`
	Cancelled int `json:"cancelled"`
}

// Collect scans all reservations for entries matching the guest's email
// (case-insensitive) and counts visits, no-shows and cancellations.
//
// Visited is a heuristic: the data model has no "attended" status, so the
// count of placed/confirmed reservations minus one (the reservation being
// looked at right now) floored at zero stands in for completed visits.
func Collect(email string, all []reservation.Reservation) History {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return History{}
	}

	var h History
	pending := 0
	for i := range all {
		res := &all[i]
		if !strings.EqualFold(strings.TrimSpace(res.Email), email) {
			continue
		}
		switch res.Status {
		case reservation.StatusNoShow:
			h.NoShow++
		case reservation.StatusCancelled:
			h.Cancelled++
		case reservation.StatusPlaced, reservation.StatusConfirmed:
			pending++
		}
	}

	h.Visited = max(0, pending-1)
	return h
}
