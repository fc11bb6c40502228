package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/gottliebdinh/moggi-admin/internal/domain/order"
	"github.com/gottliebdinh/moggi-admin/internal/infra"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `
	id, order_number, customer_name, COALESCE(customer_email, ''),
	total_amount, pickup_date, LEFT(pickup_time::text, 5), status,
	COALESCE(payment_intent_id, ''), items, COALESCE(note, ''), type, created_at`

// FindByCreatedDate lists orders whose created_at falls on the given
// calendar day, newest first.
func (r *OrderRepository) FindByCreatedDate(ctx context.Context, date string) ([]order.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE created_at >= $1::date AND created_at < $1::date + INTERVAL '1 day'
		ORDER BY created_at DESC`, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order rows", err)
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, d order.Draft) (*order.Order, error) {
	items, err := json.Marshal(d.Items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode order items", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (
			order_number, customer_name, customer_email, total_amount,
			pickup_date, pickup_time, status, items, note, type
		) VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
		RETURNING `+orderColumns,
		d.OrderNumber, d.CustomerName, d.CustomerEmail, d.TotalAmount,
		d.PickupDate, d.PickupTime, d.Status, items, d.Note, d.Type)

	o, err := scanOrder(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("order number already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create order", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

type orderScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderScanner) (*order.Order, error) {
	var o order.Order
	var items []byte
	if err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.CustomerEmail,
		&o.TotalAmount, &o.PickupDate, &o.PickupTime, &o.Status,
		&o.PaymentIntentID, &items, &o.Note, &o.Type, &o.CreatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, infra.WrapRepoErr("failed to decode order items", err)
		}
	}
	return &o, nil
}
