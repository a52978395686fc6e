package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rating-catalog/internal/data/entity"
	"rating-catalog/internal/data/repository"
	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/snapshot"
)

func newTestSeriesService(ratings *fakeRatingRepo, series *fakeSeriesRepo) (SeriesService, *snapshot.Hub) {
	hub := snapshot.NewHub(zap.NewNop())
	repo := &repository.Repository{
		Rating: ratings,
		Series: series,
	}
	return NewSeriesService(repo, hub, zap.NewNop()), hub
}

func TestSeriesService_ListSortedByTitle(t *testing.T) {
	seriesRepo := &fakeSeriesRepo{items: []*entity.Series{
		{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Title: "Zeta", Type: entity.MediaTypeShow},
		{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Title: "Alpha", Type: entity.MediaTypeMovie},
	}}
	svc, _ := newTestSeriesService(&fakeRatingRepo{}, seriesRepo)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 series, got %d", len(got))
	}
	if got[0].Title != "Alpha" || got[1].Title != "Zeta" {
		t.Errorf("expected title order [Alpha Zeta], got [%s %s]", got[0].Title, got[1].Title)
	}
}

func TestSeriesService_CreateBroadcasts(t *testing.T) {
	svc, hub := newTestSeriesService(&fakeRatingRepo{}, &fakeSeriesRepo{})

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	resp, err := svc.Create(context.Background(), &request.SeriesRequest{
		Title: "Cosmere",
		Type:  "book",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.Type != "book" {
		t.Errorf("unexpected type %q", resp.Type)
	}

	select {
	case msg := <-sub:
		if msg.Type != snapshot.MessageTypeSeries {
			t.Errorf("expected series snapshot, got %q", msg.Type)
		}
	default:
		t.Error("expected a snapshot broadcast after create")
	}
}

func TestSeriesService_SummaryAveragesPositiveScores(t *testing.T) {
	seriesID := uuid.New()
	seriesRepo := &fakeSeriesRepo{items: []*entity.Series{{
		BaseSimple: entity.BaseSimple{ID: seriesID, CreatedAt: time.Now()},
		Title:      "Trilogy",
		Type:       entity.MediaTypeMovie,
	}}}
	ratingRepo := &fakeRatingRepo{items: []*entity.Rating{
		{Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()}, Title: "One", Type: entity.MediaTypeMovie, SeriesID: &seriesID, Score: scorePtr(7.0)},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()}, Title: "Two", Type: entity.MediaTypeMovie, SeriesID: &seriesID, Score: scorePtr(8.5)},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()}, Title: "Unscored", Type: entity.MediaTypeMovie, SeriesID: &seriesID},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now()}, Title: "Other", Type: entity.MediaTypeMovie, Score: scorePtr(1.0)},
	}}
	svc, _ := newTestSeriesService(ratingRepo, seriesRepo)

	got, err := svc.Summary(context.Background(), seriesID.String())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if got.ItemCount != 3 {
		t.Errorf("unscored members still count, expected 3, got %d", got.ItemCount)
	}
	if got.AverageScore == nil || *got.AverageScore != 7.8 {
		t.Errorf("expected average 7.8, got %v", got.AverageScore)
	}
	if got.AverageDisplay != "7.8" {
		t.Errorf("expected display %q, got %q", "7.8", got.AverageDisplay)
	}
}

func TestSeriesService_SummaryNotFound(t *testing.T) {
	svc, _ := newTestSeriesService(&fakeRatingRepo{}, &fakeSeriesRepo{})

	_, err := svc.Summary(context.Background(), uuid.NewString())
	if err == nil || !strings.Contains(err.Error(), "series not found") {
		t.Errorf("expected not-found error, got %v", err)
	}

	_, err = svc.Summary(context.Background(), "not-a-uuid")
	if err == nil || !strings.Contains(err.Error(), "invalid series id") {
		t.Errorf("expected invalid-id error, got %v", err)
	}
}
