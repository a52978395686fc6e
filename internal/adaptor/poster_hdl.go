package adaptor

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"rating-catalog/pkg/utils"
)

// PosterHandler serves locally stored poster images by reference name.
// Lookup tries the .png variant first, then .jpg.
type PosterHandler struct {
	dir string
	log *zap.Logger
}

func NewPosterHandler(dir string, log *zap.Logger) *PosterHandler {
	return &PosterHandler{
		dir: dir,
		log: log.With(zap.String("handler", "poster")),
	}
}

// GetPoster handles GET /images/{ref}
func (h *PosterHandler) GetPoster(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	if ref == "" || ref != filepath.Base(ref) {
		utils.ResponseBadRequest(w, "Invalid image reference", nil)
		return
	}

	for _, ext := range []string{".png", ".jpg"} {
		path := filepath.Join(h.dir, ref+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
	}

	h.log.Debug("Poster not found", zap.String("ref", ref))
	utils.ResponseNotFound(w, "Image not found")
}
