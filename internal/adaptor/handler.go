package adaptor

import (
	"github.com/nopasawa/Suki/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Table     *TableHandler
	Order     *OrderHandler
	Menu      *MenuHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Table:     NewTableHandler(service.Table, log),
		Order:     NewOrderHandler(service.Order, log),
		Menu:      NewMenuHandler(service.Menu, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
