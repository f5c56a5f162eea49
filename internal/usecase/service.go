package usecase

import (
	"time"

	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/qr"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

// Clock supplies the current instant. Injected so the expiry sweep is
// deterministic under test; production wiring passes time.Now.
type Clock func() time.Time

type Service struct {
	Auth      AuthService
	Table     TableService
	Order     OrderService
	Menu      MenuService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, qrGen qr.Generator, clock Clock, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Table:     NewTableService(repo, config, qrGen, clock, log),
		Order:     NewOrderService(repo, clock, log),
		Menu:      NewMenuService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
