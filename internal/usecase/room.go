package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrTableNotFound = errors.New("table not found")
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]room.Room, error)
	Create(ctx context.Context, name, description string) (*room.Room, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomUseCase interface {
	List(ctx context.Context) ([]room.Room, error)
	CreateRoom(ctx context.Context, name, description string) (*room.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, name, description string) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	ListTables(ctx context.Context) ([]room.Table, error)
	CreateTable(ctx context.Context, roomID uuid.UUID, name string, capacity int) (*room.Table, error)
	UpdateTable(ctx context.Context, id uuid.UUID, name string, capacity int) error
	DeleteTable(ctx context.Context, id uuid.UUID) error
}

type roomUseCaseImpl struct {
	roomRepo  RoomRepository
	tableRepo TableRepository
}

func NewRoomUseCase(roomRepo RoomRepository, tableRepo TableRepository) RoomUseCase {
	return &roomUseCaseImpl{roomRepo: roomRepo, tableRepo: tableRepo}
}

// List returns every room with its tables nested. Degrades to an empty
// list on storage failure so the floor plan renders.
func (u *roomUseCaseImpl) List(ctx context.Context) ([]room.Room, error) {
	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to load rooms, returning empty list", "error", err)
		return []room.Room{}, nil
	}
	if rooms == nil {
		rooms = []room.Room{}
	}
	return rooms, nil
}

func (u *roomUseCaseImpl) CreateRoom(ctx context.Context, name, description string) (*room.Room, error) {
	if err := room.ValidateRoomName(name); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	created, err := u.roomRepo.Create(ctx, name, description)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, name, description string) error {
	if err := room.ValidateRoomName(name); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.roomRepo.Update(ctx, id, name, description); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DeleteRoom removes the room; its tables go with it via the cascading
// foreign key.
func (u *roomUseCaseImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := u.roomRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *roomUseCaseImpl) ListTables(ctx context.Context) ([]room.Table, error) {
	tables, err := u.tableRepo.FindAll(ctx)
	if err != nil {
		slog.Warn("failed to load tables, returning empty list", "error", err)
		return []room.Table{}, nil
	}
	if tables == nil {
		tables = []room.Table{}
	}
	return tables, nil
}

func (u *roomUseCaseImpl) CreateTable(ctx context.Context, roomID uuid.UUID, name string, capacity int) (*room.Table, error) {
	if err := room.ValidateTable(name, capacity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	created, err := u.tableRepo.Create(ctx, roomID, name, capacity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}

func (u *roomUseCaseImpl) UpdateTable(ctx context.Context, id uuid.UUID, name string, capacity int) error {
	if err := room.ValidateTable(name, capacity); err != nil {
		return errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := u.tableRepo.Update(ctx, id, name, capacity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTableNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *roomUseCaseImpl) DeleteTable(ctx context.Context, id uuid.UUID) error {
	if err := u.tableRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTableNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
