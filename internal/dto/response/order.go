package response

import (
	"time"

	"github.com/nopasawa/Suki/internal/data/entity"
)

type OrderResponse struct {
	OrderID   string             `json:"order_id"`
	BatchID   string             `json:"batch_id"`
	TableID   string             `json:"table_id"`
	ItemName  string             `json:"item_name"`
	Quantity  int                `json:"quantity"`
	Status    entity.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

type OrderBatchResponse struct {
	BatchID string           `json:"batch_id"`
	TableID string           `json:"table_id"`
	Orders  []*OrderResponse `json:"orders"`
}

func OrderToResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		OrderID:   order.OrderID,
		BatchID:   order.BatchID,
		TableID:   order.TableID,
		ItemName:  order.ItemName,
		Quantity:  order.Quantity,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
	}
}
