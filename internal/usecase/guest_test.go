//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottliebdinh/moggi-admin/internal/domain/guest"
	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/usecase"
	"github.com/gottliebdinh/moggi-admin/tests/common/builder"
)

func TestGuestHistory(t *testing.T) {
	t.Run("aggregates across the full log", func(t *testing.T) {
		repo := &fakeReservationRepo{all: []reservation.Reservation{
			builder.NewReservationBuilder().BuildDomain(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = reservation.StatusNoShow
			}).BuildDomain(),
			builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = reservation.StatusCancelled
			}).BuildDomain(),
		}}
		uc := usecase.NewGuestUseCase(repo)

		got, err := uc.History(context.Background(), "anna@example.com")
		require.NoError(t, err)
		assert.Equal(t, guest.History{Visited: 0, NoShow: 1, Cancelled: 1}, got)
	})

	t.Run("storage failure degrades to zero history", func(t *testing.T) {
		repo := &fakeReservationRepo{findAllErr: assert.AnError}
		uc := usecase.NewGuestUseCase(repo)

		got, err := uc.History(context.Background(), "anna@example.com")
		require.NoError(t, err)
		assert.Equal(t, guest.History{}, got)
	})
}
