package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rating-catalog/internal/data/entity"
	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/derive"
	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/dto/response"
	"rating-catalog/internal/snapshot"
	"rating-catalog/pkg/utils"
)

type RatingService interface {
	// List derives the ordered display list from the full snapshot.
	List(ctx context.Context, state derive.ListState) ([]response.RatingResponse, error)
	Get(ctx context.Context, ratingID string) (*response.RatingDetailResponse, error)
	// Genres returns the facet options for the current snapshot.
	Genres(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req *request.RatingRequest) (*response.RatingResponse, error)
	Update(ctx context.Context, ratingID string, req *request.RatingUpdateRequest) (*response.RatingResponse, error)
	Delete(ctx context.Context, ratingID string) error
}

type ratingService struct {
	repo *repository.Repository
	hub  *snapshot.Hub
	log  *zap.Logger
}

func NewRatingService(
	repo *repository.Repository,
	hub *snapshot.Hub,
	log *zap.Logger,
) RatingService {
	return &ratingService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "rating")),
	}
}

// seriesTitles loads the series collection as an id -> title map for
// badge resolution.
func (s *ratingService) seriesTitles(ctx context.Context) (map[uuid.UUID]string, error) {
	list, err := s.repo.Series.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	titles := make(map[uuid.UUID]string, len(list))
	for _, series := range list {
		titles[series.ID] = series.Title
	}
	return titles, nil
}

func seriesTitleFor(rating *entity.Rating, titles map[uuid.UUID]string) *string {
	if rating.SeriesID == nil {
		return nil
	}
	if title, ok := titles[*rating.SeriesID]; ok {
		return &title
	}
	return nil
}

func (s *ratingService) List(ctx context.Context, state derive.ListState) ([]response.RatingResponse, error) {
	items, err := s.repo.Rating.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load ratings", zap.Error(err))
		return nil, fmt.Errorf("get ratings: %w", err)
	}

	titles, err := s.seriesTitles(ctx)
	if err != nil {
		s.log.Error("Failed to load series titles", zap.Error(err))
		return nil, fmt.Errorf("get series: %w", err)
	}

	derived := derive.List(items, state)

	responses := make([]response.RatingResponse, len(derived))
	for i, rating := range derived {
		responses[i] = response.RatingToResponse(rating, seriesTitleFor(rating, titles))
	}

	s.log.Debug("Ratings listed",
		zap.Int("snapshot", len(items)),
		zap.Int("derived", len(derived)),
		zap.String("sort", string(state.Sort)),
	)

	return responses, nil
}

func (s *ratingService) Get(ctx context.Context, ratingID string) (*response.RatingDetailResponse, error) {
	id, err := uuid.Parse(ratingID)
	if err != nil {
		s.log.Warn("Invalid rating ID format", zap.String("rating_id", ratingID), zap.Error(err))
		return nil, fmt.Errorf("invalid rating id: %w", err)
	}

	rating, err := s.repo.Rating.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get rating by ID", zap.Error(err), zap.String("rating_id", ratingID))
		return nil, fmt.Errorf("get rating by id: %w", err)
	}
	if rating == nil {
		return nil, fmt.Errorf("rating not found")
	}

	var seriesTitle *string
	if rating.SeriesID != nil {
		series, err := s.repo.Series.FindByID(ctx, *rating.SeriesID)
		if err != nil {
			s.log.Warn("Failed to resolve series for rating",
				zap.Error(err),
				zap.String("rating_id", ratingID),
			)
		} else if series != nil {
			seriesTitle = &series.Title
		}
	}

	detail := response.RatingToDetailResponse(rating, seriesTitle)
	return &detail, nil
}

func (s *ratingService) Genres(ctx context.Context) ([]string, error) {
	items, err := s.repo.Rating.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load ratings for facets", zap.Error(err))
		return nil, fmt.Errorf("get ratings: %w", err)
	}

	return derive.Genres(items), nil
}

func (s *ratingService) Create(ctx context.Context, req *request.RatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	mediaType, err := parseMediaType(req.Type)
	if err != nil {
		return nil, err
	}

	seriesID, seriesTitle, err := s.resolveSeries(ctx, req.SeriesName, req.SeriesID, mediaType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		EnglishTitle: req.EnglishTitle,
		Type:         mediaType,
		Creator:      req.Creator,
		Genre:        req.Genre,
		Poster:       req.Poster,
		Year:         req.Year,
		Score:        roundedScore(req.Score),
		Review:       req.Review,
		DetailReview: req.DetailReview,
		SeriesID:     seriesID,
	}

	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.String("rating_id", rating.ID.String()),
		zap.String("title", rating.Title),
		zap.String("type", string(rating.Type)),
	)

	s.publishSnapshot(ctx)

	resp := response.RatingToResponse(rating, seriesTitle)
	return &resp, nil
}

func (s *ratingService) Update(ctx context.Context, ratingID string, req *request.RatingUpdateRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(ratingID)
	if err != nil {
		return nil, fmt.Errorf("invalid rating id: %w", err)
	}

	rating, err := s.repo.Rating.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rating: %w", err)
	}
	if rating == nil {
		return nil, fmt.Errorf("rating not found")
	}

	updated := false

	if req.Title != nil && *req.Title != rating.Title {
		rating.Title = *req.Title
		updated = true
	}

	if req.EnglishTitle != nil {
		rating.EnglishTitle = req.EnglishTitle
		updated = true
	}

	if req.Type != nil {
		mediaType, err := parseMediaType(*req.Type)
		if err != nil {
			return nil, err
		}
		rating.Type = mediaType
		updated = true
	}

	if req.Creator != nil {
		rating.Creator = req.Creator
		updated = true
	}

	if req.Genre != nil {
		rating.Genre = req.Genre
		updated = true
	}

	if req.Poster != nil {
		rating.Poster = req.Poster
		updated = true
	}

	if req.Year != nil {
		rating.Year = req.Year
		updated = true
	}

	if req.Score != nil {
		rating.Score = roundedScore(req.Score)
		updated = true
	}

	if req.Review != nil {
		rating.Review = req.Review
		updated = true
	}

	if req.DetailReview != nil {
		rating.DetailReview = req.DetailReview
		updated = true
	}

	if req.SeriesName != nil || req.SeriesID != nil {
		seriesID, _, err := s.resolveSeries(ctx, req.SeriesName, req.SeriesID, rating.Type)
		if err != nil {
			return nil, err
		}
		rating.SeriesID = seriesID
		updated = true
	}

	if updated {
		rating.UpdatedAt = time.Now()
		if err := s.repo.Rating.Update(ctx, rating); err != nil {
			s.log.Error("Failed to update rating", zap.Error(err), zap.String("rating_id", ratingID))
			return nil, fmt.Errorf("update rating: %w", err)
		}

		s.publishSnapshot(ctx)
	}

	s.log.Info("Rating updated",
		zap.String("rating_id", ratingID),
		zap.String("title", rating.Title),
		zap.Bool("was_updated", updated),
	)

	titles, err := s.seriesTitles(ctx)
	if err != nil {
		titles = nil
	}

	resp := response.RatingToResponse(rating, seriesTitleFor(rating, titles))
	return &resp, nil
}

func (s *ratingService) Delete(ctx context.Context, ratingID string) error {
	id, err := uuid.Parse(ratingID)
	if err != nil {
		return fmt.Errorf("invalid rating id: %w", err)
	}

	rating, err := s.repo.Rating.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find rating: %w", err)
	}
	if rating == nil {
		return fmt.Errorf("rating not found")
	}

	if err := s.repo.Rating.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete rating", zap.Error(err), zap.String("rating_id", ratingID))
		return fmt.Errorf("delete rating: %w", err)
	}

	s.log.Info("Rating deleted",
		zap.String("rating_id", ratingID),
		zap.String("title", rating.Title),
	)

	s.publishSnapshot(ctx)

	return nil
}

// resolveSeries picks the series link for a rating: a provided name
// creates a fresh series (inheriting the rating's type) and wins over
// an explicit id.
func (s *ratingService) resolveSeries(ctx context.Context, name *string, idStr *string, mediaType entity.MediaType) (*uuid.UUID, *string, error) {
	if name != nil && *name != "" {
		series := &entity.Series{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			Title: *name,
			Type:  mediaType,
		}

		if err := s.repo.Series.Create(ctx, series); err != nil {
			s.log.Error("Failed to create series", zap.Error(err), zap.String("title", *name))
			return nil, nil, fmt.Errorf("create series: %w", err)
		}

		s.log.Info("Series created inline",
			zap.String("series_id", series.ID.String()),
			zap.String("title", series.Title),
		)

		return &series.ID, &series.Title, nil
	}

	if idStr == nil || *idStr == "" {
		return nil, nil, nil
	}

	id, err := uuid.Parse(*idStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("check series: %w", err)
	}
	if series == nil {
		return nil, nil, fmt.Errorf("series not found: %s", *idStr)
	}

	return &series.ID, &series.Title, nil
}

// publishSnapshot pushes the full current ratings snapshot to live
// subscribers. A failed reload only costs this push; the next mutation
// supersedes it.
func (s *ratingService) publishSnapshot(ctx context.Context) {
	items, err := s.repo.Rating.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to reload snapshot for broadcast", zap.Error(err))
		return
	}

	titles, err := s.seriesTitles(ctx)
	if err != nil {
		s.log.Warn("Failed to load series titles for broadcast", zap.Error(err))
		titles = nil
	}

	responses := make([]response.RatingResponse, len(items))
	for i, rating := range items {
		responses[i] = response.RatingToResponse(rating, seriesTitleFor(rating, titles))
	}

	s.hub.Broadcast(snapshot.Message{
		Type: snapshot.MessageTypeRatings,
		Data: responses,
	})
}

func parseMediaType(value string) (entity.MediaType, error) {
	switch value {
	case string(entity.MediaTypeMovie):
		return entity.MediaTypeMovie, nil
	case string(entity.MediaTypeShow):
		return entity.MediaTypeShow, nil
	case string(entity.MediaTypeBook):
		return entity.MediaTypeBook, nil
	default:
		return "", fmt.Errorf("invalid media type: %s", value)
	}
}

func roundedScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	rounded := derive.RoundScore(*score)
	return &rounded
}
