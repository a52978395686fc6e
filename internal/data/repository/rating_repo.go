package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/data/entity"
	"rating-catalog/pkg/database"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	// FindAll returns the complete snapshot ordered by creation
	// timestamp descending. List derivation always starts from it.
	FindAll(ctx context.Context) ([]*entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

const ratingColumns = `id, title, english_title, type, creator, genre, poster,
	       year, score, review, detail_review, series_id, created_at, updated_at`

func scanRating(row pgx.Row) (*entity.Rating, error) {
	var rating entity.Rating
	err := row.Scan(
		&rating.ID,
		&rating.Title,
		&rating.EnglishTitle,
		&rating.Type,
		&rating.Creator,
		&rating.Genre,
		&rating.Poster,
		&rating.Year,
		&rating.Score,
		&rating.Review,
		&rating.DetailReview,
		&rating.SeriesID,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, title, english_title, type, creator, genre,
		                    poster, year, score, review, detail_review,
		                    series_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.Title,
		rating.EnglishTitle,
		rating.Type,
		rating.Creator,
		rating.Genre,
		rating.Poster,
		rating.Year,
		rating.Score,
		rating.Review,
		rating.DetailReview,
		rating.SeriesID,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("title", rating.Title),
		)
		return fmt.Errorf("failed to create rating: %w", err)
	}

	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`

	rating, err := scanRating(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by ID",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}

	return rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load ratings snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to find ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Ratings snapshot loaded", zap.Int("count", len(ratings)))

	return ratings, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	query := `
		UPDATE ratings
		SET title = $2, english_title = $3, type = $4, creator = $5,
		    genre = $6, poster = $7, year = $8, score = $9, review = $10,
		    detail_review = $11, series_id = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.Title,
		rating.EnglishTitle,
		rating.Type,
		rating.Creator,
		rating.Genre,
		rating.Poster,
		rating.Year,
		rating.Score,
		rating.Review,
		rating.DetailReview,
		rating.SeriesID,
		rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rating",
			zap.Error(err),
			zap.String("rating_id", rating.ID.String()),
		)
		return fmt.Errorf("failed to update rating: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rating not found")
	}

	return nil
}

func (r *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ratings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return fmt.Errorf("failed to delete rating: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rating not found")
	}

	r.log.Info("Rating deleted", zap.String("rating_id", id.String()))
	return nil
}
