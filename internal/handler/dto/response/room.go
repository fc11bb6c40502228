package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/room"
)

type TableResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Tables      []TableResponse `json:"tables"`
	CreatedAt   time.Time       `json:"created_at"`
}

func FromTable(t *room.Table) *TableResponse {
	return &TableResponse{
		ID:        t.ID,
		RoomID:    t.RoomID,
		Name:      t.Name,
		Capacity:  t.Capacity,
		CreatedAt: t.CreatedAt,
	}
}

func FromTables(list []room.Table) []TableResponse {
	out := make([]TableResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromTable(&list[i]))
	}
	return out
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Tables:      FromTables(r.Tables),
		CreatedAt:   r.CreatedAt,
	}
}

func FromRooms(list []room.Room) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(list))
	for i := range list {
		out = append(out, FromRoom(&list[i]))
	}
	return out
}
