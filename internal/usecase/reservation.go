package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
	"github.com/gottliebdinh/moggi-admin/internal/infra/mail"
	"github.com/gottliebdinh/moggi-admin/internal/infra/repository"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
	"github.com/gottliebdinh/moggi-admin/internal/usecase/shared"
)

var (
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrTableConflict           = errors.New("table already reserved for an overlapping time")
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type ReservationRepository interface {
	FindAll(ctx context.Context) ([]reservation.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]reservation.Reservation, error)
	FindByDateLocked(ctx context.Context, tx repository.DBTX, date string) ([]reservation.Reservation, error)
	FindByID(ctx context.Context, db repository.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, tx repository.DBTX, d reservation.Draft) (*reservation.Reservation, error)
	Update(ctx context.Context, tx repository.DBTX, id uuid.UUID, d reservation.Draft) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationUseCase interface {
	List(ctx context.Context, date string) ([]reservation.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error)
	Update(ctx context.Context, id uuid.UUID, draft reservation.Draft) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	db              *pgxpool.Pool
	mailer          mail.Sender
	mailTimeout     time.Duration
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	db *pgxpool.Pool,
	mailer mail.Sender,
	mailTimeout time.Duration,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		db:              db,
		mailer:          mailer,
		mailTimeout:     mailTimeout,
	}
}

// List returns reservations for a date, or every reservation when date is
// empty. A storage failure degrades to an empty list so the calendar keeps
// rendering.
func (u *reservationUseCaseImpl) List(ctx context.Context, date string) ([]reservation.Reservation, error) {
	var (
		reservations []reservation.Reservation
		err          error
	)
	if date == "" {
		reservations, err = u.reservationRepo.FindAll(ctx)
	} else {
		reservations, err = u.reservationRepo.FindByDate(ctx, date)
	}
	if err != nil {
		slog.Warn("failed to load reservations, returning empty list", "date", date, "error", err)
		return []reservation.Reservation{}, nil
	}
	if reservations == nil {
		reservations = []reservation.Reservation{}
	}
	return reservations, nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := u.reservationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return res, nil
}

// Create validates the draft and writes it inside a transaction that re-runs
// the table overlap check against the date's reservations under a row lock.
// Client-side availability is advisory only; this check is what actually
// prevents a double booking.
func (u *reservationUseCaseImpl) Create(ctx context.Context, draft reservation.Draft) (*reservation.Reservation, error) {
	draft = draft.Normalized()
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	return shared.RunInTx(ctx, u.db, func(tx repository.DBTX) (*reservation.Reservation, error) {
		if err := u.guardTableConflict(ctx, tx, draft, uuid.Nil); err != nil {
			return nil, err
		}
		created, err := u.reservationRepo.Create(ctx, tx, draft)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return created, nil
	})
}

func (u *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, draft reservation.Draft) (*reservation.Reservation, error) {
	draft = draft.Normalized()
	if err := draft.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	return shared.RunInTx(ctx, u.db, func(tx repository.DBTX) (*reservation.Reservation, error) {
		if err := u.guardTableConflict(ctx, tx, draft, id); err != nil {
			return nil, err
		}
		updated, err := u.reservationRepo.Update(ctx, tx, id, draft)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrReservationNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return updated, nil
	})
}

// guardTableConflict repeats the overlap computation against the rows locked
// by FindByDateLocked. Drafts without a table assignment or without a
// blocking status never conflict.
func (u *reservationUseCaseImpl) guardTableConflict(ctx context.Context, tx repository.DBTX, draft reservation.Draft, excludeID uuid.UUID) error {
	requested := reservation.SplitTables(draft.Tables)
	if len(requested) == 0 || !draft.Status.Active() {
		return nil
	}

	start, err := schedule.ParseClock(draft.Time)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}

	existing, err := u.reservationRepo.FindByDateLocked(ctx, tx, draft.Date)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if schedule.HasTableConflict(requested, start, draft.Duration, existing, excludeID) {
		return ErrTableConflict
	}
	return nil
}

// UpdateStatus moves a reservation to any of the four statuses. Entering
// no-show additionally notifies the guest by mail when an address is on
// file; the send runs detached and a failure never affects the update.
func (u *reservationUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) (*reservation.Reservation, error) {
	current, err := u.reservationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, errs.Mark(errs.New("status transition rejected"), ErrDomainValidationFailed)
	}

	updated, err := u.reservationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if status == reservation.StatusNoShow && current.Status != reservation.StatusNoShow && updated.Email != "" {
		go u.sendNoShowNotice(*updated)
	}

	return updated, nil
}

func (u *reservationUseCaseImpl) sendNoShowNotice(res reservation.Reservation) {
	ctx, cancel := context.WithTimeout(context.Background(), u.mailTimeout)
	defer cancel()

	html, err := mail.RenderNoShowNotice(res.GuestName, res.Date, res.Time)
	if err != nil {
		slog.Error("failed to render no-show notice", "reservation_id", res.ID, "error", err)
		return
	}
	if err := u.mailer.Send(ctx, res.Email, "Deine Reservierung bei MOGGI", html); err != nil {
		slog.Error("failed to send no-show notice", "reservation_id", res.ID, "error", err)
	}
}

func (u *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
