package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/gottliebdinh/moggi-admin/internal/domain/order"
)

type OrderResponse struct {
	ID              uuid.UUID    `json:"id"`
	OrderNumber     string       `json:"order_number"`
	CustomerName    string       `json:"customer_name"`
	CustomerEmail   string       `json:"customer_email,omitempty"`
	TotalAmount     float64      `json:"total_amount"`
	PickupDate      string       `json:"pickup_date"`
	PickupTime      string       `json:"pickup_time"`
	Status          string       `json:"status"`
	PaymentIntentID string       `json:"payment_intent_id,omitempty"`
	Items           []order.Item `json:"items"`
	Note            string       `json:"note,omitempty"`
	Type            string       `json:"type"`
	CreatedAt       time.Time    `json:"created_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	out := &OrderResponse{}
	_ = copier.Copy(out, o)
	out.Status = string(o.Status)
	if out.Items == nil {
		out.Items = []order.Item{}
	}
	return out
}

func FromOrders(list []order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, FromOrder(&list[i]))
	}
	return out
}
