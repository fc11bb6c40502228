package usecase

import (
	"context"
	"log/slog"

	"github.com/gottliebdinh/moggi-admin/internal/domain/guest"
)

type GuestUseCase interface {
	History(ctx context.Context, email string) (guest.History, error)
}

type guestUseCaseImpl struct {
	reservationRepo ReservationRepository
}

func NewGuestUseCase(reservationRepo ReservationRepository) GuestUseCase {
	return &guestUseCaseImpl{reservationRepo: reservationRepo}
}

// History aggregates visit counts for a guest across every reservation on
// record. A storage failure yields the all-zero history rather than an
// error, matching the read degradation policy.
func (u *guestUseCaseImpl) History(ctx context.Context, email string) (guest.History, error) {
	all, err := u.reservationRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to load reservations for guest history", "error", err)
		return guest.History{}, nil
	}
	return guest.Collect(email, all), nil
}
