package theme

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// MockService реализует интерфейс theme.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Resolve(ctx context.Context) models.Theme {
	args := m.Called(ctx)
	return args.Get(0).(models.Theme)
}

func TestThemeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	theme := models.Theme{
		"primaryColor":       "#2563eb",
		"secondaryColor":     "#64748b",
		"backgroundColor":    "#ffffff",
		"textColor":          "#0f172a",
		"accentColor":        "#f59e0b",
		"theme_primaryColor": "#112233",
	}

	mockService := new(MockService)
	mockService.On("Resolve", mock.Anything).Return(theme)

	handler := New(logger, mockService)

	req := httptest.NewRequest(http.MethodGet, "/theme", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, map[string]string(theme), got)
	mockService.AssertExpectations(t)
}
