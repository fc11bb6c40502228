//go:build unit

package guest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gottliebdinh/moggi-admin/internal/domain/guest"
	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/tests/common/builder"
)

func annaWithStatus(status reservation.Status) reservation.Reservation {
	return builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.Status = status
	}).BuildDomain()
}

func TestCollect(t *testing.T) {
	t.Run("counts by status with the current visit excluded", func(t *testing.T) {
		all := []reservation.Reservation{
			annaWithStatus(reservation.StatusPlaced),
			annaWithStatus(reservation.StatusConfirmed),
			annaWithStatus(reservation.StatusPlaced),
			annaWithStatus(reservation.StatusNoShow),
			annaWithStatus(reservation.StatusCancelled),
			annaWithStatus(reservation.StatusCancelled),
		}

		got := guest.Collect("anna@example.com", all)
		assert.Equal(t, guest.History{Visited: 2, NoShow: 1, Cancelled: 2}, got)
	})

	t.Run("single open reservation counts as no prior visits", func(t *testing.T) {
		all := []reservation.Reservation{annaWithStatus(reservation.StatusPlaced)}

		got := guest.Collect("anna@example.com", all)
		assert.Equal(t, guest.History{Visited: 0, NoShow: 0, Cancelled: 0}, got)
	})

	t.Run("email match is case-insensitive and trimmed", func(t *testing.T) {
		all := []reservation.Reservation{
			annaWithStatus(reservation.StatusNoShow),
		}

		got := guest.Collect("  Anna@Example.COM ", all)
		assert.Equal(t, 1, got.NoShow)
	})

	t.Run("other guests are ignored", func(t *testing.T) {
		stranger := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Email = "ben@example.com"
			b.Status = reservation.StatusNoShow
		}).BuildDomain()

		got := guest.Collect("anna@example.com", []reservation.Reservation{stranger})
		assert.Equal(t, guest.History{}, got)
	})

	t.Run("empty email yields empty history", func(t *testing.T) {
		all := []reservation.Reservation{annaWithStatus(reservation.StatusNoShow)}

		assert.Equal(t, guest.History{}, guest.Collect("", all))
		assert.Equal(t, guest.History{}, guest.Collect("   ", all))
	})
}
