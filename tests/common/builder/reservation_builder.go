//go:build unit

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	Date      string
	Time      string
	GuestName string
	Guests    int
	Tables    string
	Note      string
	Comment   string
	Status    reservation.Status
	Duration  int
	Phone     string
	Email     string
	Source    reservation.Source
	Type      string
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		Date:      "2025-03-07",
		Time:      "19:00",
		GuestName: "Anna Schmidt",
		Guests:    4,
		Tables:    "5 Tisch",
		Status:    reservation.StatusPlaced,
		Duration:  120,
		Email:     "anna@example.com",
		Source:    reservation.SourceManual,
		Type:      "Abendessen",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() reservation.Reservation {
	var res reservation.Reservation
	_ = copier.Copy(&res, b)
	return res
}

func (b *ReservationBuilder) BuildDraft() reservation.Draft {
	var d reservation.Draft
	_ = copier.Copy(&d, b)
	return d
}
