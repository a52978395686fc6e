package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/adaptor"
	"rating-catalog/internal/data/repository"
	"rating-catalog/pkg/middleware"
	"rating-catalog/pkg/utils"
)

func wireSeries(
	r chi.Router,
	seriesHandler *adaptor.SeriesHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/series", seriesHandler.GetSeries)
	r.Get("/api/series/{id}/summary", seriesHandler.GetSeriesSummary)

	// Admin routes
	r.Route("/api/admin/series", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(config.Admin.Email, log))

		r.Post("/", seriesHandler.CreateSeries)
	})
}
