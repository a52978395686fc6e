package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/derive"
	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/dto/response"
	"rating-catalog/internal/usecase"
	"rating-catalog/pkg/utils"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetRatings handles GET /api/ratings
//
// Query parameters: type, genre, series_id, q, sort. Unknown sort
// values fall back to the newest-first default.
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state := derive.ListState{
		Type:     query.Get("type"),
		Genre:    query.Get("genre"),
		SeriesID: query.Get("series_id"),
		Search:   query.Get("q"),
		Sort:     parseSortMode(query.Get("sort")),
	}

	ratings, err := h.service.List(r.Context(), state)
	if err != nil {
		h.handleServiceError(w, err, "get ratings")
		return
	}

	utils.ResponseSuccess(w, "Ratings retrieved", ratings)
}

// GetRatingByID handles GET /api/ratings/{id}
func (h *RatingHandler) GetRatingByID(w http.ResponseWriter, r *http.Request) {
	ratingID := chi.URLParam(r, "id")

	rating, err := h.service.Get(r.Context(), ratingID)
	if err != nil {
		h.handleServiceError(w, err, "get rating")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved", rating)
}

// GetGenres handles GET /api/genres
//
// The optional "current" query parameter is the caller's active facet
// selection; it survives when it still exists in the fresh options and
// resets to "all" otherwise.
func (h *RatingHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	facet := response.GenreFacetResponse{
		Options:  genres,
		Selected: derive.KeepSelection(genres, r.URL.Query().Get("current")),
	}

	utils.ResponseSuccess(w, "Genres retrieved", facet)
}

// CreateRating handles POST /api/admin/ratings
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.RatingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "Rating created", rating)
}

// UpdateRating handles PUT /api/admin/ratings/{id}
func (h *RatingHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	ratingID := chi.URLParam(r, "id")

	var req request.RatingUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.Update(r.Context(), ratingID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "Rating updated", rating)
}

// DeleteRating handles DELETE /api/admin/ratings/{id}
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	ratingID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), ratingID); err != nil {
		h.handleServiceError(w, err, "delete rating")
		return
	}

	utils.ResponseSuccess(w, "Rating deleted", nil)
}

func parseSortMode(value string) derive.SortMode {
	switch derive.SortMode(value) {
	case derive.SortScoreDesc, derive.SortScoreAsc, derive.SortTitleAsc:
		return derive.SortMode(value)
	default:
		return derive.SortCreatedDesc
	}
}

func (h *RatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
