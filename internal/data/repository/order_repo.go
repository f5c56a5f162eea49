package repository

import (
	"context"
	"fmt"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*entity.Order) error
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)
	FindPending(ctx context.Context) ([]*entity.Order, error)
	FindByTableID(ctx context.Context, tableID string) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateBatch(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	// One transaction per submission so a half-written batch never
	// becomes visible to the kitchen.
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order batch", zap.Error(err))
		return fmt.Errorf("begin order batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (order_id, batch_id, table_id, item_name, quantity, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, order := range orders {
		_, err := tx.Exec(ctx, query,
			order.OrderID,
			order.BatchID,
			order.TableID,
			order.ItemName,
			order.Quantity,
			order.Status,
			order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert order line",
				zap.Error(err),
				zap.String("order_id", order.OrderID),
				zap.String("table_id", order.TableID),
			)
			return fmt.Errorf("insert order line %s: %w", order.OrderID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order batch", zap.Error(err))
		return fmt.Errorf("commit order batch: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	query := `
		SELECT order_id, batch_id, table_id, item_name, quantity, status, created_at
		FROM orders
		WHERE order_id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.BatchID,
		&order.TableID,
		&order.ItemName,
		&order.Quantity,
		&order.Status,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}

	return &order, nil
}

func (r *orderRepository) FindPending(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT order_id, batch_id, table_id, item_name, quantity, status, created_at
		FROM orders
		WHERE status = $1
		ORDER BY table_id, created_at
	`

	return r.findMany(ctx, query, entity.OrderStatusPending)
}

func (r *orderRepository) FindByTableID(ctx context.Context, tableID string) ([]*entity.Order, error) {
	query := `
		SELECT order_id, batch_id, table_id, item_name, quantity, status, created_at
		FROM orders
		WHERE table_id = $1
		ORDER BY created_at
	`

	return r.findMany(ctx, query, tableID)
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE order_id = $1`

	result, err := r.db.Exec(ctx, query, orderID, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", orderID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s: %w", orderID, ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.OrderID,
			&order.BatchID,
			&order.TableID,
			&order.ItemName,
			&order.Quantity,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
