package usecase

import (
	"go.uber.org/zap"

	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/snapshot"
	"rating-catalog/pkg/utils"
)

type Service struct {
	Auth   AuthService
	Rating RatingService
	Series SeriesService
}

func NewService(repo *repository.Repository, config *utils.Config, hub *snapshot.Hub, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Rating: NewRatingService(repo, hub, log),
		Series: NewSeriesService(repo, hub, log),
	}
}
