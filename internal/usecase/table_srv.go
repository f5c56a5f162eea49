package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/request"
	"github.com/nopasawa/Suki/internal/dto/response"
	"github.com/nopasawa/Suki/pkg/qr"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

// TableService owns the occupancy record set. Every state change a
// table goes through (open, expire, checkout) happens here and nowhere
// else.
type TableService interface {
	ListAvailable(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context) ([]*response.TableResponse, error)
	Open(ctx context.Context, req *request.OpenTableRequest) (*response.TableResponse, error)
	Checkout(ctx context.Context, tableID string) error
}

type tableService struct {
	repo   *repository.Repository
	config *utils.Config
	qrGen  qr.Generator
	now    Clock
	log    *zap.Logger

	// Serializes check-then-write sequences (open, checkout) against
	// the tables record set so two racing bookings cannot both pass
	// the availability check. The primary key on table_id is the
	// backstop underneath.
	mu sync.Mutex
}

func NewTableService(repo *repository.Repository, config *utils.Config, qrGen qr.Generator, clock Clock, log *zap.Logger) TableService {
	return &tableService{
		repo:   repo,
		config: config,
		qrGen:  qrGen,
		now:    clock,
		log:    log.With(zap.String("service", "table")),
	}
}

// ListAvailable runs the expiry sweep and returns the table ids with no
// occupancy row. Expired tables still hold physical space until
// checkout, so both active and expired rows count as unavailable. The
// sweep and the availability computation run under the same lock, so no
// id is reported free while a row for it still exists.
func (s *tableService) ListAvailable(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables, err := s.sweepAndList(ctx)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(tables))
	for _, table := range tables {
		occupied[table.TableID] = true
	}

	available := make([]string, 0, s.config.Venue.TableCount)
	for _, id := range s.config.Venue.TableIDs() {
		if !occupied[id] {
			available = append(available, id)
		}
	}

	return available, nil
}

// ListTables returns every occupancy row after the expiry sweep, for
// the cashier floor view.
func (s *tableService) ListTables(ctx context.Context) ([]*response.TableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables, err := s.sweepAndList(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*response.TableResponse, len(tables))
	for i, table := range tables {
		responses[i] = response.TableToResponse(table)
	}

	return responses, nil
}

func (s *tableService) Open(ctx context.Context, req *request.OpenTableRequest) (*response.TableResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Open table validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Adults < 0 || req.Children < 0 || req.Adults+req.Children <= 0 {
		return nil, fmt.Errorf("open table %s with %d adults, %d children: %w",
			req.TableID, req.Adults, req.Children, repository.ErrInvalidParty)
	}

	if !s.validTableID(req.TableID) {
		return nil, fmt.Errorf("open table %s: %w", req.TableID, repository.ErrTableNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.Table.FindByID(ctx, req.TableID)
	if err != nil {
		return nil, fmt.Errorf("check table availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("open table %s: %w", req.TableID, repository.ErrTableUnavailable)
	}

	now := s.now()
	table := &entity.Table{
		TableID:    req.TableID,
		Adults:     req.Adults,
		Children:   req.Children,
		StartTime:  now,
		EndTime:    now.Add(s.config.Venue.EatingDuration),
		TotalPrice: float64(req.Adults)*s.config.Venue.AdultPrice + float64(req.Children)*s.config.Venue.ChildPrice,
		Status:     entity.TableStatusActive,
	}

	menuURL := fmt.Sprintf("%s/api/menu/%s", s.config.App.BaseURL, req.TableID)
	qrPath, err := s.qrGen.Create(menuURL, req.TableID)
	if err != nil {
		s.log.Error("Failed to create QR artifact",
			zap.Error(err),
			zap.String("table_id", req.TableID),
		)
		return nil, fmt.Errorf("create qr artifact for %s: %w", req.TableID, err)
	}
	table.QRCodePath = qrPath

	if err := s.repo.Table.Create(ctx, table); err != nil {
		// Roll back the artifact so no handle leaks without a row.
		if destroyErr := s.qrGen.Destroy(qrPath); destroyErr != nil {
			s.log.Error("Failed to roll back QR artifact",
				zap.Error(destroyErr),
				zap.String("table_id", req.TableID),
			)
		}
		return nil, err
	}

	s.log.Info("Table opened",
		zap.String("table_id", table.TableID),
		zap.Int("adults", table.Adults),
		zap.Int("children", table.Children),
		zap.Float64("total_price", table.TotalPrice),
		zap.Time("end_time", table.EndTime),
	)

	return response.TableToResponse(table), nil
}

// Checkout ends an occupancy and frees the table for reuse. Order
// lines keyed by this table id are left intact as historical records.
func (s *tableService) Checkout(ctx context.Context, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return fmt.Errorf("find table for checkout: %w", err)
	}
	if table == nil {
		return fmt.Errorf("checkout table %s: %w", tableID, repository.ErrTableNotFound)
	}

	// Best-effort: a leftover PNG is harmless, a blocked checkout is
	// not.
	if err := s.qrGen.Destroy(table.QRCodePath); err != nil {
		s.log.Warn("Failed to destroy QR artifact",
			zap.Error(err),
			zap.String("table_id", tableID),
			zap.String("qr_code_path", table.QRCodePath),
		)
	}

	if err := s.repo.Table.Delete(ctx, tableID); err != nil {
		return err
	}

	s.log.Info("Table checked out",
		zap.String("table_id", tableID),
		zap.Float64("total_price", table.TotalPrice),
	)

	return nil
}

// sweepAndList flips overdue active rows to expired and returns the
// post-sweep record set. Callers must hold s.mu.
func (s *tableService) sweepAndList(ctx context.Context) ([]*entity.Table, error) {
	now := s.now()

	expired, err := s.repo.Table.MarkExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("expiry sweep: %w", err)
	}
	if expired > 0 {
		s.log.Info("Expiry sweep flipped tables", zap.Int64("count", expired), zap.Time("now", now))
	}

	tables, err := s.repo.Table.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	return tables, nil
}

func (s *tableService) validTableID(tableID string) bool {
	for _, id := range s.config.Venue.TableIDs() {
		if id == tableID {
			return true
		}
	}
	return false
}
