package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/internal/dto/request"
	"rating-catalog/internal/usecase"
	"rating-catalog/pkg/utils"
)

type SeriesHandler struct {
	service usecase.SeriesService
	log     *zap.Logger
}

func NewSeriesHandler(service usecase.SeriesService, log *zap.Logger) *SeriesHandler {
	return &SeriesHandler{
		service: service,
		log:     log.With(zap.String("handler", "series")),
	}
}

// GetSeries handles GET /api/series
func (h *SeriesHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get series")
		return
	}

	utils.ResponseSuccess(w, "Series retrieved", series)
}

// GetSeriesSummary handles GET /api/series/{id}/summary
func (h *SeriesHandler) GetSeriesSummary(w http.ResponseWriter, r *http.Request) {
	seriesID := chi.URLParam(r, "id")

	summary, err := h.service.Summary(r.Context(), seriesID)
	if err != nil {
		h.handleServiceError(w, err, "get series summary")
		return
	}

	utils.ResponseSuccess(w, "Series summary retrieved", summary)
}

// CreateSeries handles POST /api/admin/series
func (h *SeriesHandler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	var req request.SeriesRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	series, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create series")
		return
	}

	utils.ResponseCreated(w, "Series created", series)
}

func (h *SeriesHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
