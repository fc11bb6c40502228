package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

// ReservationResponse keeps the snake_case column names the admin frontend
// has always consumed, tables included as the stored ", "-joined string.
type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	GuestName string    `json:"guest_name"`
	Guests    int       `json:"guests"`
	Tables    string    `json:"tables"`
	Note      string    `json:"note,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	Duration  int       `json:"duration"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Source    string    `json:"source"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	out := &ReservationResponse{}
	_ = copier.Copy(out, res)
	out.Status = string(res.Status)
	out.Source = string(res.Source)
	return out
}

func FromReservations(list []reservation.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(list))
	for i := range list {
		out = append(out, FromReservation(&list[i]))
	}
	return out
}
