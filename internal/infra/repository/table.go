package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
)

type TableRepository struct {
	db DBTX
}

func NewTableRepository(db DBTX) *TableRepository {
	return &TableRepository{db: db}
}

// FindAll returns the full table inventory across all rooms, ordered by name
// so the picker renders stably.
func (r *TableRepository) FindAll(ctx context.Context) ([]room.Table, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, name, capacity, created_at
		FROM tables
		ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	return scanTables(rows)
}

func (r *TableRepository) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]room.Table, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, name, capacity, created_at
		FROM tables
		WHERE room_id = $1
		ORDER BY name ASC`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables by room", err)
	}
	defer rows.Close()

	return scanTables(rows)
}

func (r *TableRepository) Create(ctx context.Context, roomID uuid.UUID, name string, capacity int) (*room.Table, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO tables (room_id, name, capacity)
		VALUES ($1, $2, $3)
		RETURNING id, room_id, name, capacity, created_at`,
		roomID, name, capacity)

	var t room.Table
	if err := row.Scan(&t.ID, &t.RoomID, &t.Name, &t.Capacity, &t.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create table", err)
	}
	return &t, nil
}

func (r *TableRepository) Update(ctx context.Context, id uuid.UUID, name string, capacity int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tables SET name = $2, capacity = $3
		WHERE id = $1`, id, name, capacity)
	if err != nil {
		return infra.WrapRepoErr("failed to update table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanTables(rows interface {
	Scan(dest ...any) error
	Next() bool
	Err() error
}) ([]room.Table, error) {
	var out []room.Table
	for rows.Next() {
		var t room.Table
		if err := rows.Scan(&t.ID, &t.RoomID, &t.Name, &t.Capacity, &t.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read table rows", err)
	}
	return out, nil
}
