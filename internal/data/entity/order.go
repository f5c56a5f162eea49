package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusServed  OrderStatus = "served"
)

// Order is one item-quantity line within a submission batch. Lines are
// never deleted; only Status mutates, and only pending -> served.
type Order struct {
	OrderID   string      `db:"order_id"`
	BatchID   string      `db:"batch_id"`
	TableID   string      `db:"table_id"`
	ItemName  string      `db:"item_name"`
	Quantity  int         `db:"quantity"`
	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
}
