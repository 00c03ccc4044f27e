package middlewarectx_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kruglovmaksim/jobmatch/internal/http/middlewarectx"
	libjwt "github.com/kruglovmaksim/jobmatch/internal/lib/jwt"
)

// ParserMock реализует middlewarectx.TokenParser
type ParserMock struct {
	mock.Mock
}

func (m *ParserMock) ParseToken(tokenStr string) (*libjwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	claims, _ := args.Get(0).(*libjwt.CustomClaims)
	return claims, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSessionMiddleware(t *testing.T) {
	logger := newNoopLogger()
	realMaker := libjwt.NewMaker("test_secret", time.Minute)

	tests := []struct {
		name            string
		cookie          *http.Cookie
		setupMock       func(*ParserMock)
		wantStatusCode  int
		wantBody        string
		wantCalled     bool
	}{
		{
			name:           "нет cookie — не залогинен, верификатор не вызывается",
			cookie:         nil,
			setupMock:      func(_ *ParserMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `"error":"not logged in"`,
		},
		{
			name:           "пустое значение cookie",
			cookie:         &http.Cookie{Name: middlewarectx.SessionCookieName, Value: ""},
			setupMock:      func(_ *ParserMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `"error":"not logged in"`,
		},
		{
			name:   "невалидный токен — общий ответ без текста ошибки верификатора",
			cookie: &http.Cookie{Name: middlewarectx.SessionCookieName, Value: "bad-token"},
			setupMock: func(m *ParserMock) {
				m.On("ParseToken", "bad-token").
					Return(nil, assert.AnError).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `"error":"invalid session"`,
		},
		{
			name:   "валидный токен — пользователь в контексте",
			cookie: &http.Cookie{Name: middlewarectx.SessionCookieName, Value: "good-token"},
			setupMock: func(m *ParserMock) {
				m.On("ParseToken", "good-token").
					Return(&libjwt.CustomClaims{UserID: 7, Role: "seeker"}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parserMock := new(ParserMock)
			tt.setupMock(parserMock)

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				userID, err := middlewarectx.UserIDFromContext(r.Context())
				assert.NoError(t, err)
				assert.Equal(t, int64(7), userID)
				role, err := middlewarectx.RoleFromContext(r.Context())
				assert.NoError(t, err)
				assert.Equal(t, "seeker", role)
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.SessionMiddleware(parserMock, logger)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			if tt.wantStatusCode == http.StatusUnauthorized {
				// детали ошибки верификатора не утекают наружу
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
			}
			parserMock.AssertExpectations(t)
		})
	}

	// настоящий maker как parser: подписанный токен проходит насквозь
	t.Run("настоящий jwt maker", func(t *testing.T) {
		token, err := realMaker.GenerateToken(7, "seeker")
		assert.NoError(t, err)

		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})
		mw := middlewarectx.SessionMiddleware(realMaker, newNoopLogger())(next)

		req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
		req.AddCookie(&http.Cookie{Name: middlewarectx.SessionCookieName, Value: token})
		rec := httptest.NewRecorder()

		mw.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, handlerCalled)
	})
}
