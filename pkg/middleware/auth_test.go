package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rating-catalog/pkg/utils"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithIdentity(email string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/ratings", nil)
	ctx := utils.SetUserContext(req.Context(), uuid.New(), email)
	return req.WithContext(ctx)
}

func TestAdmin_ExactEmailMatch(t *testing.T) {
	gate := Admin("admin@example.com", zap.NewNop())(okHandler())

	tests := []struct {
		name     string
		email    string
		wantCode int
	}{
		{"admin passes", "admin@example.com", http.StatusOK},
		{"case mismatch rejected", "Admin@example.com", http.StatusForbidden},
		{"other account rejected", "visitor@example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			gate.ServeHTTP(rec, requestWithIdentity(tt.email))

			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}

func TestAdmin_UnconfiguredRejectsEveryone(t *testing.T) {
	gate := Admin("", zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, requestWithIdentity("admin@example.com"))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestAdmin_MissingIdentity(t *testing.T) {
	gate := Admin("admin@example.com", zap.NewNop())(okHandler())

	rec := httptest.NewRecorder()
	gate.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/ratings", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
