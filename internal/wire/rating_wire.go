package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/adaptor"
	"rating-catalog/internal/data/repository"
	"rating-catalog/pkg/middleware"
	"rating-catalog/pkg/utils"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes: browsing, searching, and facets need no account.
	r.Get("/api/ratings", ratingHandler.GetRatings)
	r.Get("/api/ratings/{id}", ratingHandler.GetRatingByID)
	r.Get("/api/genres", ratingHandler.GetGenres)

	// Admin routes: every write goes through the configured
	// administrator account.
	r.Route("/api/admin/ratings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(config.Admin.Email, log))

		r.Post("/", ratingHandler.CreateRating)
		r.Put("/{id}", ratingHandler.UpdateRating)
		r.Delete("/{id}", ratingHandler.DeleteRating)
	})
}
