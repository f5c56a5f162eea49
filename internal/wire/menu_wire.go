package wire

import (
	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/menu/{tableID} - guest menu page via the QR code, only
	// answers for active tables
	r.Get("/api/menu/{tableID}", menuHandler.GetMenuForTable)

	// Admin menu management.
	r.Route("/api/admin/menu", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		// GET /api/admin/menu - full catalog grouped by category
		r.Get("/", menuHandler.GetMenu)

		// POST /api/admin/menu - add or replace an item
		r.Post("/", menuHandler.AddItem)

		// DELETE /api/admin/menu/{name} - remove an item
		r.Delete("/{name}", menuHandler.RemoveItem)
	})
}
