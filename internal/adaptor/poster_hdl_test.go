package adaptor

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newPosterRouter(dir string) *chi.Mux {
	handler := NewPosterHandler(dir, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/images/{ref}", handler.GetPoster)
	return r
}

func TestPosterHandler_PreferPNGOverJPG(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "oldboy.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "oldboy.jpg"), []byte("jpg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	router := newPosterRouter(dir)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/oldboy", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "png-bytes" {
		t.Errorf("expected the png variant, got %q", got)
	}
}

func TestPosterHandler_FallBackToJPG(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dune.jpg"), []byte("jpg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	router := newPosterRouter(dir)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/dune", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "jpg-bytes" {
		t.Errorf("expected the jpg variant, got %q", got)
	}
}

func TestPosterHandler_MissingImage(t *testing.T) {
	router := newPosterRouter(t.TempDir())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/nothing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestPosterHandler_RejectsPathTraversal(t *testing.T) {
	router := newPosterRouter(t.TempDir())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/images/..%2Fsecret", nil))

	if rec.Code == http.StatusOK {
		t.Error("traversal reference must not resolve")
	}
}
