package wire

import (
	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDashboard(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/admin/dashboard", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		// GET /api/admin/dashboard - revenue, customers, order and
		// table counts
		r.Get("/", dashboardHandler.GetMetrics)
	})
}
