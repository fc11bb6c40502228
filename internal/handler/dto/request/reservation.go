package request

import (
	"strings"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

// UpsertReservationRequest covers create and update; the wire shape keeps
// the snake_case field names the booking clients already send.
type UpsertReservationRequest struct {
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time" binding:"required"`
	GuestName string   `json:"guest_name" binding:"required"`
	Guests    int      `json:"guests" binding:"required,min=1"`
	Tables    []string `json:"tables,omitempty"`
	Note      string   `json:"note,omitempty"`
	Comment   string   `json:"comment,omitempty"`
	Status    string   `json:"status,omitempty"`
	Duration  int      `json:"duration,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Email     string   `json:"email,omitempty"`
	Source    string   `json:"source,omitempty"`
	Type      string   `json:"type,omitempty"`
}

func (r UpsertReservationRequest) ToDraft() (reservation.Draft, error) {
	tables, err := reservation.JoinTables(r.Tables)
	if err != nil {
		return reservation.Draft{}, err
	}
	return reservation.Draft{
		Date:      strings.TrimSpace(r.Date),
		Time:      strings.TrimSpace(r.Time),
		GuestName: r.GuestName,
		Guests:    r.Guests,
		Tables:    tables,
		Note:      r.Note,
		Comment:   r.Comment,
		Status:    reservation.Status(r.Status),
		Duration:  r.Duration,
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.TrimSpace(r.Email),
		Source:    reservation.Source(r.Source),
		Type:      r.Type,
	}, nil
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
