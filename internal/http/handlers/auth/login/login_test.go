package login

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
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, rawPassword string) (string, string, error) {
	args := m.Called(ctx, email, rawPassword)
	return args.String(0), args.String(1), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
		wantCookie     bool
	}{
		{
			name: "успешный вход с установкой cookie",
			body: `{"email":"a@b.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "a@b.com", "secret123").
					Return("signed-token", "seeker", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed-token"`,
			wantCookie:     true,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "ошибка валидации: не email",
			body:           `{"email":"not-an-email","password":"secret123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "неверные учетные данные",
			body: `{"email":"a@b.com","password":"wrongpass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "a@b.com", "wrongpass").
					Return("", "", assert.AnError)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid credentials"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			cookies := w.Result().Cookies()
			if tt.wantCookie {
				var found bool
				for _, c := range cookies {
					if c.Name == middlewarectx.SessionCookieName {
						found = true
						assert.Equal(t, "signed-token", c.Value)
						assert.True(t, c.HttpOnly)
					}
				}
				assert.True(t, found, "session cookie should be set")
			} else {
				assert.Empty(t, cookies)
			}
			mockService.AssertExpectations(t)
		})
	}
}
