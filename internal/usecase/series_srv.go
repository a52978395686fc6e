package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rating-catalog/internal/data/entity"
	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/derive"
	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/dto/response"
	"rating-catalog/internal/snapshot"
	"rating-catalog/pkg/utils"
)

type SeriesService interface {
	// List returns all series, title-sorted. The store keeps them
	// unordered; ordering happens here.
	List(ctx context.Context) ([]response.SeriesResponse, error)
	Create(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error)
	// Summary computes the aggregate stats for one series from the
	// current ratings snapshot.
	Summary(ctx context.Context, seriesID string) (*response.SeriesSummaryResponse, error)
}

type seriesService struct {
	repo *repository.Repository
	hub  *snapshot.Hub
	log  *zap.Logger
}

func NewSeriesService(
	repo *repository.Repository,
	hub *snapshot.Hub,
	log *zap.Logger,
) SeriesService {
	return &seriesService{
		repo: repo,
		hub:  hub,
		log:  log.With(zap.String("service", "series")),
	}
}

func (s *seriesService) List(ctx context.Context) ([]response.SeriesResponse, error) {
	list, err := s.repo.Series.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load series", zap.Error(err))
		return nil, fmt.Errorf("get series: %w", err)
	}

	cl := collate.New(language.Und)
	sort.SliceStable(list, func(i, j int) bool {
		return cl.CompareString(list[i].Title, list[j].Title) < 0
	})

	responses := make([]response.SeriesResponse, len(list))
	for i, series := range list {
		responses[i] = response.SeriesToResponse(series)
	}

	return responses, nil
}

func (s *seriesService) Create(ctx context.Context, req *request.SeriesRequest) (*response.SeriesResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create series validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	mediaType, err := parseMediaType(req.Type)
	if err != nil {
		return nil, err
	}

	series := &entity.Series{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title: req.Title,
		Type:  mediaType,
	}

	if err := s.repo.Series.Create(ctx, series); err != nil {
		s.log.Error("Failed to create series", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create series: %w", err)
	}

	s.log.Info("Series created",
		zap.String("series_id", series.ID.String()),
		zap.String("title", series.Title),
	)

	s.publishSnapshot(ctx)

	resp := response.SeriesToResponse(series)
	return &resp, nil
}

func (s *seriesService) Summary(ctx context.Context, seriesID string) (*response.SeriesSummaryResponse, error) {
	id, err := uuid.Parse(seriesID)
	if err != nil {
		return nil, fmt.Errorf("invalid series id: %w", err)
	}

	series, err := s.repo.Series.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find series", zap.Error(err), zap.String("series_id", seriesID))
		return nil, fmt.Errorf("find series: %w", err)
	}
	if series == nil {
		return nil, fmt.Errorf("series not found")
	}

	items, err := s.repo.Rating.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load ratings for summary", zap.Error(err))
		return nil, fmt.Errorf("get ratings: %w", err)
	}

	summary := derive.Summarize(series, items)

	s.log.Debug("Series summarized",
		zap.String("series_id", seriesID),
		zap.Int("item_count", summary.ItemCount),
	)

	resp := response.SummaryToResponse(series, summary)
	return &resp, nil
}

func (s *seriesService) publishSnapshot(ctx context.Context) {
	list, err := s.repo.Series.FindAll(ctx)
	if err != nil {
		s.log.Warn("Failed to reload series for broadcast", zap.Error(err))
		return
	}

	responses := make([]response.SeriesResponse, len(list))
	for i, series := range list {
		responses[i] = response.SeriesToResponse(series)
	}

	s.hub.Broadcast(snapshot.Message{
		Type: snapshot.MessageTypeSeries,
		Data: responses,
	})
}
