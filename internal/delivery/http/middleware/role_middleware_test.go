package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-automation-backend/internal/domain/entity"
)

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		ctx    context.Context
		status int
	}{
		{"no role", context.Background(), http.StatusUnauthorized},
		{"patient", context.WithValue(context.Background(), RoleIDKey, entity.RoleIDPatient), http.StatusForbidden},
		{"admin", context.WithValue(context.Background(), RoleIDKey, entity.RoleIDAdmin), http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()

			RequireAdmin(ok).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}
