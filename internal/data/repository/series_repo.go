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

// SeriesRepository exposes create and read only. A series is a pure
// grouping entity; no update or delete path exists.
type SeriesRepository interface {
	Create(ctx context.Context, series *entity.Series) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error)
	FindAll(ctx context.Context) ([]*entity.Series, error)
}

type seriesRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeriesRepository(db database.PgxIface, log *zap.Logger) SeriesRepository {
	return &seriesRepository{
		db:  db,
		log: log.With(zap.String("repository", "series")),
	}
}

func (r *seriesRepository) Create(ctx context.Context, series *entity.Series) error {
	query := `
		INSERT INTO series (id, title, type, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		series.ID,
		series.Title,
		series.Type,
		series.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create series",
			zap.Error(err),
			zap.String("title", series.Title),
		)
		return fmt.Errorf("failed to create series: %w", err)
	}

	return nil
}

func (r *seriesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Series, error) {
	query := `SELECT id, title, type, created_at FROM series WHERE id = $1`

	var series entity.Series
	err := r.db.QueryRow(ctx, query, id).Scan(
		&series.ID,
		&series.Title,
		&series.Type,
		&series.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find series by ID",
			zap.Error(err),
			zap.String("series_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find series: %w", err)
	}

	return &series, nil
}

func (r *seriesRepository) FindAll(ctx context.Context) ([]*entity.Series, error) {
	// No store-side ordering; callers sort locally.
	query := `SELECT id, title, type, created_at FROM series`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all series", zap.Error(err))
		return nil, fmt.Errorf("failed to find series: %w", err)
	}
	defer rows.Close()

	var list []*entity.Series
	for rows.Next() {
		var series entity.Series
		err := rows.Scan(
			&series.ID,
			&series.Title,
			&series.Type,
			&series.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan series row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan series: %w", err)
		}
		list = append(list, &series)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return list, nil
}
