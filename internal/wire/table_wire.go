package wire

import (
	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTable(
	r chi.Router,
	tableHandler *adaptor.TableHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Cashier station: seat parties, free tables.
	r.Route("/api/tables", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(string(entity.RoleCashier), log))

		// GET /api/tables/available - free table ids after the expiry sweep
		r.Get("/available", tableHandler.ListAvailable)

		// GET /api/tables - every occupancy for the floor view
		r.Get("/", tableHandler.ListTables)

		// POST /api/tables - open an occupancy
		r.Post("/", tableHandler.Open)

		// POST /api/tables/{tableID}/checkout - end an occupancy
		r.Post("/{tableID}/checkout", tableHandler.Checkout)
	})
}
