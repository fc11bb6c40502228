package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/order"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	FindByCreatedDate(ctx context.Context, date string) ([]order.Order, error)
	Create(ctx context.Context, d order.Draft) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

type OrderUseCase interface {
	ListByDate(ctx context.Context, date string) ([]order.Order, error)
	Create(ctx context.Context, draft order.Draft) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type orderUseCaseImpl struct {
	orderRepo OrderRepository
	clock     clock.Clock
}

func NewOrderUseCase(orderRepo OrderRepository, clk clock.Clock) OrderUseCase {
	return &orderUseCaseImpl{orderRepo: orderRepo, clock: clk}
}

// ListByDate returns orders created on the given day, defaulting to today.
// Degrades to an empty list on storage failure.
func (u *orderUseCaseImpl) ListByDate(ctx context.Context, date string) ([]order.Order, error) {
	if date == "" {
		date = clock.Today(u.clock)
	}
	orders, err := u.orderRepo.FindByCreatedDate(ctx, date)
	if err != nil {
		slog.Warn("failed to load orders, returning empty list", "date", date, "error", err)
		return []order.Order{}, nil
	}
	if orders == nil {
		orders = []order.Order{}
	}
	return orders, nil
}

func (u *orderUseCaseImpl) Create(ctx context.Context, draft order.Draft) (*order.Order, error) {
	normalized, err := draft.Normalized(u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	created, err := u.orderRepo.Create(ctx, normalized)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *orderUseCaseImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.orderRepo.UpdateStatus(ctx, id, parsed); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
