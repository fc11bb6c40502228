package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName  = errors.New("room name cannot be empty")
	ErrEmptyTableName = errors.New("table name cannot be empty")
	ErrInvalidCapacity = errors.New("table capacity must be at least 1")
)

// Room is a dining area of the restaurant. Deleting a room cascades to its
// tables (enforced in the store).
type Room struct {
	ID          uuid.UUID
	Name        string
	Description string
	Tables      []Table
	CreatedAt   time.Time
}

// Table is a physical table. Name is the display label reservations refer to
// by value; renaming a table silently orphans existing assignments, which is
// accepted behavior of the current data model.
type Table struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Name      string
	Capacity  int
	CreatedAt time.Time
}

func ValidateRoomName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyRoomName
	}
	return nil
}

func ValidateTable(name string, capacity int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyTableName
	}
	if capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}
