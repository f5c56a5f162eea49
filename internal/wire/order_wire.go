package wire

import (
	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/entity"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/orders/{tableID} - guest submission via the table's QR
	// code, no session
	r.Post("/api/orders/{tableID}", orderHandler.Submit)

	// Kitchen station: the pending queue and serving.
	r.Route("/api/kitchen/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(string(entity.RoleChef), log))

		// GET /api/kitchen/orders - pending lines grouped by table
		r.Get("/", orderHandler.ListPending)

		// POST /api/kitchen/orders/{orderID}/serve - mark a line served
		r.Post("/{orderID}/serve", orderHandler.Serve)
	})

	// GET /api/admin/tables/{tableID}/orders - full order history for a
	// table, any status, survives checkout
	r.Route("/api/admin/tables", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		r.Get("/{tableID}/orders", orderHandler.ListByTable)
	})
}
