package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/adaptor"
	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/snapshot"
	"rating-catalog/internal/usecase"
	"rating-catalog/pkg/middleware"
	"rating-catalog/pkg/utils"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, hub *snapshot.Hub, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, hub, logger)
	handler := adaptor.NewHandler(service, hub, config, logger)

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

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireRating(r, handler.Rating, repo, config, logger)
	wireSeries(r, handler.Series, repo, config, logger)

	// Live snapshot feed and poster images sit outside the /api JSON
	// error conventions.
	r.Get("/api/live", handler.Live.Feed)
	r.Get("/images/{ref}", handler.Poster.GetPoster)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
