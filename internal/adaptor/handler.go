package adaptor

import (
	"go.uber.org/zap"

	"rating-catalog/internal/snapshot"
	"rating-catalog/internal/usecase"
	"rating-catalog/pkg/utils"
)

type Handler struct {
	Auth   *AuthHandler
	Rating *RatingHandler
	Series *SeriesHandler
	Live   *LiveHandler
	Poster *PosterHandler
}

func NewHandler(service *usecase.Service, hub *snapshot.Hub, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Rating: NewRatingHandler(service.Rating, log),
		Series: NewSeriesHandler(service.Series, log),
		Live:   NewLiveHandler(hub, log),
		Poster: NewPosterHandler(config.Images.Dir, log),
	}
}
