package wire

import (
	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/login - any station signs in here
	r.Post("/api/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - invalidate the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
