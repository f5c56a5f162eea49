package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/response"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

// OrderService owns the order-line record set. Lines are created on
// submission and only ever move pending -> served; nothing deletes
// them, not even checkout of their table.
type OrderService interface {
	SubmitItems(ctx context.Context, tableID string, items map[string]int) (*response.OrderBatchResponse, error)
	ListPendingByTable(ctx context.Context) (map[string][]*response.OrderResponse, error)
	ListByTable(ctx context.Context, tableID string) ([]*response.OrderResponse, error)
	Serve(ctx context.Context, orderID string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	now  Clock
	log  *zap.Logger

	// Serializes writers against the orders record set.
	mu sync.Mutex
}

func NewOrderService(repo *repository.Repository, clock Clock, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		now:  clock,
		log:  log.With(zap.String("service", "order")),
	}
}

// SubmitItems accepts one submission batch against an active table.
// Zero and negative quantities are skipped, not rejected: the guest
// form posts every menu item and leaves unordered ones blank. The
// occupancy must be active at submission time; expired tables must be
// checked out and reopened before ordering again.
func (s *orderService) SubmitItems(ctx context.Context, tableID string, items map[string]int) (*response.OrderBatchResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("check table for submission: %w", err)
	}
	if table == nil || table.Status != entity.TableStatusActive {
		return nil, fmt.Errorf("submit items for table %s: %w", tableID, repository.ErrTableNotActive)
	}

	now := s.now()
	batchID := utils.GenerateBatchID()

	var orders []*entity.Order
	for itemName, quantity := range items {
		if quantity <= 0 {
			continue
		}
		orders = append(orders, &entity.Order{
			OrderID:   utils.GenerateOrderLineID(tableID, now),
			BatchID:   batchID,
			TableID:   tableID,
			ItemName:  itemName,
			Quantity:  quantity,
			Status:    entity.OrderStatusPending,
			CreatedAt: now,
		})
	}

	if err := s.repo.Order.CreateBatch(ctx, orders); err != nil {
		s.log.Error("Failed to create order batch",
			zap.Error(err),
			zap.String("table_id", tableID),
			zap.String("batch_id", batchID),
		)
		return nil, err
	}

	s.log.Info("Order batch submitted",
		zap.String("table_id", tableID),
		zap.String("batch_id", batchID),
		zap.Int("line_count", len(orders)),
	)

	lines := make([]*response.OrderResponse, len(orders))
	for i, order := range orders {
		lines[i] = response.OrderToResponse(order)
	}

	return &response.OrderBatchResponse{
		BatchID: batchID,
		TableID: tableID,
		Orders:  lines,
	}, nil
}

// ListPendingByTable groups the kitchen queue by table. A table with no
// pending lines does not appear in the map at all.
func (s *orderService) ListPendingByTable(ctx context.Context) (map[string][]*response.OrderResponse, error) {
	pending, err := s.repo.Order.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	grouped := make(map[string][]*response.OrderResponse)
	for _, order := range pending {
		grouped[order.TableID] = append(grouped[order.TableID], response.OrderToResponse(order))
	}

	return grouped, nil
}

// ListByTable returns every line ever submitted against a table, any
// status. Still answers after the table checked out.
func (s *orderService) ListByTable(ctx context.Context, tableID string) ([]*response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByTableID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("list orders for table %s: %w", tableID, err)
	}

	responses := make([]*response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}

	return responses, nil
}

// Serve flips one line to served. Serving an already-served line is a
// no-op, so the kitchen can double-tap without harm.
func (s *orderService) Serve(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find order for serving: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("serve order %s: %w", orderID, repository.ErrOrderNotFound)
	}

	if order.Status == entity.OrderStatusServed {
		return response.OrderToResponse(order), nil
	}

	if err := s.repo.Order.UpdateStatus(ctx, orderID, entity.OrderStatusServed); err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusServed

	s.log.Info("Order served",
		zap.String("order_id", orderID),
		zap.String("table_id", order.TableID),
		zap.String("item_name", order.ItemName),
	)

	return response.OrderToResponse(order), nil
}
