package adaptor

import (
	"net/http"

	"github.com/nopasawa/Suki/internal/usecase"
	"github.com/nopasawa/Suki/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// GetMetrics handles GET /api/admin/dashboard (admin)
func (h *DashboardHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.service.GetMetrics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard metrics")
		return
	}

	utils.ResponseSuccess(w, "success", metrics)
}
