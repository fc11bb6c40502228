package request

import "github.com/google/uuid"

type UpsertRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type CreateTableRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Capacity int       `json:"capacity" binding:"required,min=1"`
}

type UpdateTableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}
