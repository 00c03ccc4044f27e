package middlewarectx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
)

func TestRequireRole(t *testing.T) {
	logger := newNoopLogger()

	tests := []struct {
		name           string
		ctxRole        string
		requiredRole   string
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "роль совпадает",
			ctxRole:        "admin",
			requiredRole:   "admin",
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
		{
			name:           "роль не совпадает",
			ctxRole:        "seeker",
			requiredRole:   "admin",
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "роль отсутствует в контексте",
			ctxRole:        "",
			requiredRole:   "employer",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})
			mw := middlewarectx.RequireRole(logger, tt.requiredRole)(next)

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.ctxRole != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.ctxRole)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
		})
	}
}
