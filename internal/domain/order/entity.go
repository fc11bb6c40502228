// Package order models takeaway orders. Orders are a plain record flow
// with a fixed status vocabulary and no interaction with the reservation
// schedule.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrInvalidStatus = errs.New("invalid order status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", errs.Mark(errs.New(fmt.Sprintf("unknown order status %q", s)), ErrInvalidStatus)
}

type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	TotalAmount     float64
	PickupDate      string
	PickupTime      string
	Status          Status
	PaymentIntentID string
	Items           []Item
	Note            string
	Type            string
	CreatedAt       time.Time
}

// Draft carries caller-supplied fields for a new order. Every field is
// optional and falls back to the manual-entry defaults the admin UI relies
// on.
type Draft struct {
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	TotalAmount   float64
	PickupDate    string
	PickupTime    string
	Status        string
	Items         []Item
	Note          string
	Type          string
}

// Normalized fills the manual-entry defaults, including the generated
// MAN-YYYYMMDD-<unix millis> order number.
func (d Draft) Normalized(now time.Time) (Draft, error) {
	out := d
	if strings.TrimSpace(out.OrderNumber) == "" {
		out.OrderNumber = fmt.Sprintf("MAN-%s-%d", now.Format("20060102"), now.UnixMilli())
	}
	if strings.TrimSpace(out.CustomerName) == "" {
		out.CustomerName = "Unbekannt"
	}
	if strings.TrimSpace(out.PickupDate) == "" {
		out.PickupDate = now.Format("2006-01-02")
	}
	if strings.TrimSpace(out.PickupTime) == "" {
		out.PickupTime = "19:00"
	}
	if strings.TrimSpace(out.Type) == "" {
		out.Type = "Manuell"
	}
	if strings.TrimSpace(out.Status) == "" {
		out.Status = string(StatusPending)
	}
	if _, err := ParseStatus(out.Status); err != nil {
		return Draft{}, err
	}
	if out.Items == nil {
		out.Items = []Item{}
	}
	return out, nil
}
