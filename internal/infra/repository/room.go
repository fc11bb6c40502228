package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
)

type RoomRepository struct {
	db DBTX
}

func NewRoomRepository(db DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindAll returns every room ordered by name, each with its tables nested.
func (r *RoomRepository) FindAll(ctx context.Context) ([]room.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), created_at
		FROM rooms
		ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var rooms []room.Room
	for rows.Next() {
		var rm room.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}

	tables, err := r.findAllTables(ctx)
	if err != nil {
		return nil, err
	}
	byRoom := make(map[uuid.UUID][]room.Table, len(rooms))
	for _, t := range tables {
		byRoom[t.RoomID] = append(byRoom[t.RoomID], t)
	}
	for i := range rooms {
		rooms[i].Tables = byRoom[rooms[i].ID]
	}

	return rooms, nil
}

func (r *RoomRepository) Create(ctx context.Context, name, description string) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO rooms (name, description)
		VALUES ($1, $2)
		RETURNING id, name, COALESCE(description, ''), created_at`,
		name, description)

	var rm room.Room
	if err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.CreatedAt); err != nil {
		return nil, infra.WrapRepoErr("failed to create room", err)
	}
	return &rm, nil
}

func (r *RoomRepository) Update(ctx context.Context, id uuid.UUID, name, description string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms SET name = $2, description = $3
		WHERE id = $1`, id, name, description)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes a room and, via ON DELETE CASCADE, all of its tables.
func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) findAllTables(ctx context.Context) ([]room.Table, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, name, capacity, created_at
		FROM tables
		ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	var tables []room.Table
	for rows.Next() {
		var t room.Table
		if err := rows.Scan(&t.ID, &t.RoomID, &t.Name, &t.Capacity, &t.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read table rows", err)
	}
	return tables, nil
}
