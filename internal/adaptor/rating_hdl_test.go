package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/derive"
	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/dto/response"
)

type stubRatingService struct {
	lastState derive.ListState
	getErr    error
}

func (s *stubRatingService) List(ctx context.Context, state derive.ListState) ([]response.RatingResponse, error) {
	s.lastState = state
	return []response.RatingResponse{}, nil
}

func (s *stubRatingService) Get(ctx context.Context, ratingID string) (*response.RatingDetailResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &response.RatingDetailResponse{}, nil
}

func (s *stubRatingService) Genres(ctx context.Context) ([]string, error) {
	return []string{"all", "Action", "Drama"}, nil
}

func (s *stubRatingService) Create(ctx context.Context, req *request.RatingRequest) (*response.RatingResponse, error) {
	return &response.RatingResponse{Title: req.Title}, nil
}

func (s *stubRatingService) Update(ctx context.Context, ratingID string, req *request.RatingUpdateRequest) (*response.RatingResponse, error) {
	return &response.RatingResponse{}, nil
}

func (s *stubRatingService) Delete(ctx context.Context, ratingID string) error {
	return nil
}

func newRatingRouter(stub *stubRatingService) *chi.Mux {
	handler := NewRatingHandler(stub, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/ratings", handler.GetRatings)
	r.Get("/api/ratings/{id}", handler.GetRatingByID)
	r.Get("/api/genres", handler.GetGenres)
	return r
}

func TestGetGenres_SelectionSurvivesOrResets(t *testing.T) {
	router := newRatingRouter(&stubRatingService{})

	tests := []struct {
		current      string
		wantSelected string
	}{
		{"Action", "Action"},
		{"Horror", "all"},
		{"", "all"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/genres?current="+tt.current, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var body struct {
			Data struct {
				Options  []string `json:"options"`
				Selected string   `json:"selected"`
			} `json:"data"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}

		if body.Data.Selected != tt.wantSelected {
			t.Errorf("current=%q: expected selected %q, got %q", tt.current, tt.wantSelected, body.Data.Selected)
		}
		if len(body.Data.Options) != 3 || body.Data.Options[0] != "all" {
			t.Errorf("unexpected options %v", body.Data.Options)
		}
	}
}

func TestGetRatings_QueryToListState(t *testing.T) {
	stub := &stubRatingService{}
	router := newRatingRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/ratings?type=movie&genre=Action&q=old&sort=score-desc", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := derive.ListState{
		Type:   "movie",
		Genre:  "Action",
		Search: "old",
		Sort:   derive.SortScoreDesc,
	}
	if stub.lastState != want {
		t.Errorf("expected state %+v, got %+v", want, stub.lastState)
	}
}

func TestGetRatings_UnknownSortFallsBack(t *testing.T) {
	tests := []struct {
		query string
		want  derive.SortMode
	}{
		{"", derive.SortCreatedDesc},
		{"score-desc", derive.SortScoreDesc},
		{"score-asc", derive.SortScoreAsc},
		{"title-asc", derive.SortTitleAsc},
		{"bogus", derive.SortCreatedDesc},
	}

	for _, tt := range tests {
		if got := parseSortMode(tt.query); got != tt.want {
			t.Errorf("parseSortMode(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestGetRatingByID_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", fmt.Errorf("rating not found"), http.StatusNotFound},
		{"bad id", fmt.Errorf("invalid rating id: bad"), http.StatusBadRequest},
		{"storage failure", fmt.Errorf("get rating by id: timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRatingRouter(&stubRatingService{getErr: tt.err})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ratings/abc", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
