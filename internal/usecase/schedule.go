package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

var ErrInvalidScheduleQuery = errors.New("invalid schedule query")

type SettingsRepository interface {
	FindAllRules(ctx context.Context) ([]schedule.CapacityRule, error)
	FindAllClosedDays(ctx context.Context) ([]schedule.ClosedDay, error)
	CreateRule(ctx context.Context, rule schedule.CapacityRule) (*schedule.CapacityRule, error)
	UpdateRule(ctx context.Context, rule schedule.CapacityRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
	CreateClosedDay(ctx context.Context, date string) (*schedule.ClosedDay, error)
	DeleteClosedDay(ctx context.Context, id uuid.UUID) error
}

type TableRepository interface {
	FindAll(ctx context.Context) ([]room.Table, error)
	FindByRoom(ctx context.Context, roomID uuid.UUID) ([]room.Table, error)
	Create(ctx context.Context, roomID uuid.UUID, name string, capacity int) (*room.Table, error)
	Update(ctx context.Context, id uuid.UUID, name string, capacity int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ScheduleUseCase interface {
	Slots(ctx context.Context, date string) ([]string, error)
	DefaultTime(ctx context.Context, date string) (string, bool, error)
	Availability(ctx context.Context, date, candidateTime string, duration int, excludeID uuid.UUID) ([]schedule.TableAvailability, error)
	Fit(selectedCapacity, partySize int) schedule.Fit
}

type scheduleUseCaseImpl struct {
	settingsRepo    SettingsRepository
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewScheduleUseCase(
	settingsRepo SettingsRepository,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	clk clock.Clock,
) ScheduleUseCase {
	return &scheduleUseCaseImpl{
		settingsRepo:    settingsRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		clock:           clk,
	}
}

// Slots resolves the bookable times for a date from the recurring rules and
// closed-day exceptions. Storage failures degrade to an empty slot list.
func (u *scheduleUseCaseImpl) Slots(ctx context.Context, date string) ([]string, error) {
	rules, closedDays, ok := u.loadSettings(ctx, date)
	if !ok {
		return []string{}, nil
	}
	slots, err := schedule.AvailableSlots(date, rules, closedDays)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleQuery)
	}
	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// DefaultTime suggests a booking time for the date: today's first slot at or
// after the next whole hour, any other day's first slot. The second return
// is false when the date has no slots at all.
func (u *scheduleUseCaseImpl) DefaultTime(ctx context.Context, date string) (string, bool, error) {
	slots, err := u.Slots(ctx, date)
	if err != nil {
		return "", false, err
	}

	picked, ok := schedule.PickDefaultTime(date, slots, u.clock.Now())
	return picked, ok, nil
}

// Availability tags every table free or occupied for a prospective
// reservation. Storage failures degrade to an empty list so the picker
// renders without marks instead of erroring.
func (u *scheduleUseCaseImpl) Availability(ctx context.Context, date, candidateTime string, duration int, excludeID uuid.UUID) ([]schedule.TableAvailability, error) {
	tables, err := u.tableRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to load tables for availability", "date", date, "error", err)
		return []schedule.TableAvailability{}, nil
	}

	reservations, err := u.reservationRepo.FindByDate(ctx, date)
	if err != nil {
		slog.Warn("failed to load reservations for availability", "date", date, "error", err)
		reservations = nil
	}

	availability, err := schedule.ComputeAvailability(tables, reservations, date, candidateTime, duration, excludeID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidScheduleQuery)
	}
	if availability == nil {
		availability = []schedule.TableAvailability{}
	}
	return availability, nil
}

func (u *scheduleUseCaseImpl) Fit(selectedCapacity, partySize int) schedule.Fit {
	return schedule.ClassifyFit(selectedCapacity, partySize)
}

func (u *scheduleUseCaseImpl) loadSettings(ctx context.Context, date string) ([]schedule.CapacityRule, []schedule.ClosedDay, bool) {
	rules, err := u.settingsRepo.FindAllRules(ctx)
	if err != nil {
		slog.Warn("failed to load capacity rules", "date", date, "error", err)
		return nil, nil, false
	}
	closedDays, err := u.settingsRepo.FindAllClosedDays(ctx)
	if err != nil {
		slog.Warn("failed to load exceptions", "date", date, "error", err)
		return nil, nil, false
	}
	return rules, closedDays, true
}
