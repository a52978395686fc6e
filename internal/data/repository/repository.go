package repository

import (
	"go.uber.org/zap"

	"rating-catalog/pkg/database"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Rating  RatingRepository
	Series  SeriesRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Rating:  NewRatingRepository(db, log),
		Series:  NewSeriesRepository(db, log),
	}
}
