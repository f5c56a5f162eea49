package usecase

import (
	"context"
	"fmt"

	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/response"

	"go.uber.org/zap"
)

// DashboardService is a read-only reducer over the table and order
// record sets. Revenue and customer counts reflect only tables present
// right now; checkout discards a table's contribution.
type DashboardService interface {
	GetMetrics(ctx context.Context) (*response.DashboardResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetMetrics(ctx context.Context) (*response.DashboardResponse, error) {
	tables, err := s.repo.Table.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard tables: %w", err)
	}

	orderCount, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard order count: %w", err)
	}

	metrics := &response.DashboardResponse{
		OrderCount:       orderCount,
		ActiveTableCount: len(tables),
	}
	for _, table := range tables {
		metrics.Revenue += table.TotalPrice
		metrics.Customers += table.Adults + table.Children
	}

	return metrics, nil
}
