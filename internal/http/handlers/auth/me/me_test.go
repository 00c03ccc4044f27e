package me

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
	"github.com/kruglovmaksim/jobmatch/internal/models"
	"github.com/kruglovmaksim/jobmatch/internal/storage/repository"
)

// MockService реализует интерфейс me.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Me(ctx context.Context, userID int64) (*models.User, *models.Profile, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	profile, _ := args.Get(1).(*models.Profile)
	return user, profile, args.Error(2)
}

func TestMeHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	companyName := "Acme"

	tests := []struct {
		name           string
		ctxUserID      *int64
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
		forbiddenBody  []string
	}{
		{
			name:      "успешный ответ: только id, email и роль",
			ctxUserID: ptr(int64(7)),
			setupMock: func(m *MockService) {
				user := &models.User{
					ID:           7,
					Email:        "a@b.com",
					PasswordHash: "$2a$10$secret-hash",
					Role:         "seeker",
				}
				profile := &models.Profile{UserID: 7, CompanyName: &companyName}
				m.On("Me", mock.Anything, int64(7)).Return(user, profile, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"user":{"id":7,"email":"a@b.com","role":"seeker"}`, `"company_name":"Acme"`},
			forbiddenBody:  []string{"secret-hash", "PasswordHash", "password"},
		},
		{
			name:      "пользователь из токена не найден",
			ctxUserID: ptr(int64(404)),
			setupMock: func(m *MockService) {
				m.On("Me", mock.Anything, int64(404)).
					Return(nil, nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`"error":"user not found"`},
		},
		{
			name:      "ошибка хранилища",
			ctxUserID: ptr(int64(7)),
			setupMock: func(m *MockService) {
				m.On("Me", mock.Anything, int64(7)).
					Return(nil, nil, errors.New("db connection lost"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{`"error":"internal server error"`},
			forbiddenBody:  []string{"db connection lost"},
		},
		{
			name:           "нет пользователя в контексте",
			ctxUserID:      nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   []string{`"error":"not logged in"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.ctxUserID != nil {
				ctx := context.WithValue(req.Context(), middlewarectx.UserID, *tt.ctxUserID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			for _, forbidden := range tt.forbiddenBody {
				assert.NotContains(t, w.Body.String(), forbidden)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func ptr[T any](v T) *T { return &v }
