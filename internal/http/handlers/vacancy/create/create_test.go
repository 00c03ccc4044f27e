package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
	"github.com/kruglovmaksim/jobmatch/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, employerID int64, req models.DummyVacancy) (int64, error) {
	args := m.Called(ctx, employerID, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		employerID     *int64
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешное создание вакансии",
			employerID: ptr(int64(10)),
			body:       `{"title":"Go developer","description":"backend","location":"Berlin"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(10), models.DummyVacancy{
					Title:       "Go developer",
					Description: "backend",
					Location:    "Berlin",
				}).Return(int64(5), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":5`,
		},
		{
			name:           "нет пользователя в контексте",
			employerID:     nil,
			body:           `{"title":"Go developer","description":"backend"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"not logged in"`,
		},
		{
			name:           "ошибка валидации: слишком короткий заголовок",
			employerID:     ptr(int64(10)),
			body:           `{"title":"Go","description":"backend"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:       "ошибка сервиса",
			employerID: ptr(int64(10)),
			body:       `{"title":"Go developer","description":"backend"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, int64(10), mock.Anything).
					Return(int64(0), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to create vacancy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/vacancies", strings.NewReader(tt.body))
			if tt.employerID != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.UserID, *tt.employerID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}

func ptr[T any](v T) *T { return &v }
