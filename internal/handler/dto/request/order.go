package request

import (
	"github.com/gottliebdinh/moggi-admin/internal/domain/order"
)

type CreateOrderRequest struct {
	OrderNumber   string       `json:"order_number,omitempty"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerEmail string       `json:"customer_email,omitempty"`
	TotalAmount   float64      `json:"total_amount,omitempty"`
	PickupDate    string       `json:"pickup_date,omitempty"`
	PickupTime    string       `json:"pickup_time,omitempty"`
	Status        string       `json:"status,omitempty"`
	Items         []order.Item `json:"items,omitempty"`
	Note          string       `json:"note,omitempty"`
	Type          string       `json:"type,omitempty"`
}

func (r CreateOrderRequest) ToDraft() order.Draft {
	return order.Draft{
		OrderNumber:   r.OrderNumber,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		TotalAmount:   r.TotalAmount,
		PickupDate:    r.PickupDate,
		PickupTime:    r.PickupTime,
		Status:        r.Status,
		Items:         r.Items,
		Note:          r.Note,
		Type:          r.Type,
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
