package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/reservation"
	"github.com/gottliebdinh/moggi-admin/internal/domain/schedule"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

var (
	ErrRuleNotFound       = errors.New("capacity rule not found")
	ErrClosedDayNotFound  = errors.New("exception not found")
	ErrClosedDayDuplicate = errors.New("exception already exists for date")
)

// Settings carries everything the settings page shows in one shape.
type Settings struct {
	Rules      []schedule.CapacityRule
	ClosedDays []schedule.ClosedDay
}

type SettingsUseCase interface {
	Get(ctx context.Context) (Settings, error)
	CreateRule(ctx context.Context, rule schedule.CapacityRule) (*schedule.CapacityRule, error)
	UpdateRule(ctx context.Context, rule schedule.CapacityRule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
	CreateClosedDay(ctx context.Context, date string) (*schedule.ClosedDay, error)
	DeleteClosedDay(ctx context.Context, id uuid.UUID) error
}

type settingsUseCaseImpl struct {
	settingsRepo SettingsRepository
}

func NewSettingsUseCase(settingsRepo SettingsRepository) SettingsUseCase {
	return &settingsUseCaseImpl{settingsRepo: settingsRepo}
}

func (u *settingsUseCaseImpl) Get(ctx context.Context) (Settings, error) {
	rules, err := u.settingsRepo.FindAllRules(ctx)
	if err != nil {
		slog.Warn("failed to load capacity rules, returning empty settings", "error", err)
		return Settings{Rules: []schedule.CapacityRule{}, ClosedDays: []schedule.ClosedDay{}}, nil
	}
	closedDays, err := u.settingsRepo.FindAllClosedDays(ctx)
	if err != nil {
		slog.Warn("failed to load exceptions, returning empty settings", "error", err)
		return Settings{Rules: []schedule.CapacityRule{}, ClosedDays: []schedule.ClosedDay{}}, nil
	}
	if rules == nil {
		rules = []schedule.CapacityRule{}
	}
	if closedDays == nil {
		closedDays = []schedule.ClosedDay{}
	}
	return Settings{Rules: rules, ClosedDays: closedDays}, nil
}

func (u *settingsUseCaseImpl) CreateRule(ctx context.Context, rule schedule.CapacityRule) (*schedule.CapacityRule, error) {
	if err := rule.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	created, err := u.settingsRepo.CreateRule(ctx, rule)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *settingsUseCaseImpl) UpdateRule(ctx context.Context, rule schedule.CapacityRule) error {
	if err := rule.Validate(); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.settingsRepo.UpdateRule(ctx, rule); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *settingsUseCaseImpl) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if err := u.settingsRepo.DeleteRule(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *settingsUseCaseImpl) CreateClosedDay(ctx context.Context, date string) (*schedule.ClosedDay, error) {
	if _, err := time.Parse(reservation.DateLayout, date); err != nil {
		return nil, errs.Mark(reservation.ErrInvalidDate, ErrDomainValidationFailed)
	}
	created, err := u.settingsRepo.CreateClosedDay(ctx, date)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrClosedDayDuplicate
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *settingsUseCaseImpl) DeleteClosedDay(ctx context.Context, id uuid.UUID) error {
	if err := u.settingsRepo.DeleteClosedDay(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClosedDayNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
