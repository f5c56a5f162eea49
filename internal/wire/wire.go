package wire

import (
	"net/http"

	"github.com/nopasawa/Suki/internal/adaptor"
	"github.com/nopasawa/Suki/internal/data/repository"
	"github.com/nopasawa/Suki/internal/usecase"
	"github.com/nopasawa/Suki/pkg/middleware"
	"github.com/nopasawa/Suki/pkg/qr"
	"github.com/nopasawa/Suki/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service/handler graph and the router.
func Wiring(repo *repository.Repository, config *utils.Config, qrGen qr.Generator, clock usecase.Clock, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, qrGen, clock, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Feature routes
	wireAuth(r, handler.Auth, repo, logger)
	wireTable(r, handler.Table, repo, logger)
	wireOrder(r, handler.Order, repo, logger)
	wireMenu(r, handler.Menu, repo, logger)
	wireDashboard(r, handler.Dashboard, repo, logger)

	// Guests scan the QR PNGs straight off disk.
	fileServer := http.StripPrefix("/static/qrcodes/", http.FileServer(http.Dir(config.Venue.QRCodeDir)))
	r.Get("/static/qrcodes/*", fileServer.ServeHTTP)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
