package usecase

import (
	"context"
	"fmt"

	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/dto/request"
	"github.com/nopasawa/Suki/internal/dto/response"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

type MenuService interface {
	GetMenu(ctx context.Context) (*response.MenuResponse, error)
	GetMenuForTable(ctx context.Context, tableID string) (*response.TableMenuResponse, error)
	AddItem(ctx context.Context, req *request.MenuItemRequest) (*response.MenuItemResponse, error)
	RemoveItem(ctx context.Context, name string) error
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log.With(zap.String("service", "menu")),
	}
}

func (s *menuService) GetMenu(ctx context.Context) (*response.MenuResponse, error) {
	items, err := s.repo.Menu.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}

	return response.MenuToResponse(items), nil
}

// GetMenuForTable is the guest-facing menu page behind the QR code.
// The occupancy must exist and still be active; an expired table has to
// be checked out and reopened before its guests can order again.
func (s *menuService) GetMenuForTable(ctx context.Context, tableID string) (*response.TableMenuResponse, error) {
	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("check table for menu: %w", err)
	}
	if table == nil || table.Status != entity.TableStatusActive {
		return nil, fmt.Errorf("menu for table %s: %w", tableID, repository.ErrTableNotActive)
	}

	items, err := s.repo.Menu.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get menu for table %s: %w", tableID, err)
	}

	return &response.TableMenuResponse{
		TableID: tableID,
		EndTime: table.EndTime,
		Menu:    response.MenuToResponse(items).Categories,
	}, nil
}

func (s *menuService) AddItem(ctx context.Context, req *request.MenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add menu item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	item := &entity.MenuItem{
		Name:     req.Name,
		Category: req.Category,
	}

	if err := s.repo.Menu.Create(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info("Menu item added",
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)

	return &response.MenuItemResponse{Name: item.Name, Category: item.Category}, nil
}

func (s *menuService) RemoveItem(ctx context.Context, name string) error {
	if err := s.repo.Menu.Delete(ctx, name); err != nil {
		return err
	}

	s.log.Info("Menu item removed", zap.String("name", name))
	return nil
}
