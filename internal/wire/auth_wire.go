package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/adaptor"
	"rating-catalog/internal/data/repository"
	"rating-catalog/pkg/middleware"
	"rating-catalog/pkg/utils"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// Protected routes
	authed := middleware.AuthSession(repo.Session, repo.User, log)
	r.With(authed).Post("/api/logout", authHandler.Logout)
	r.With(authed).Get("/api/me", authHandler.Me)
}
