package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/marketplace-reports-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		setup    func(auth *mocks.MockAuthenticator)
		expected int
	}{
		{
			name:     "relatórios são públicos",
			method:   http.MethodPost,
			path:     "/v1/reports",
			setup:    func(*mocks.MockAuthenticator) {},
			expected: http.StatusOK,
		},
		{
			name:     "preflight passa sem token",
			method:   http.MethodOptions,
			path:     "/v1/shops",
			setup:    func(*mocks.MockAuthenticator) {},
			expected: http.StatusOK,
		},
		{
			name:     "sem header Authorization",
			method:   http.MethodGet,
			path:     "/v1/shops",
			setup:    func(*mocks.MockAuthenticator) {},
			expected: http.StatusUnauthorized,
		},
		{
			name:     "header sem Bearer",
			method:   http.MethodGet,
			path:     "/v1/shops",
			header:   "token",
			setup:    func(*mocks.MockAuthenticator) {},
			expected: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			method: http.MethodGet,
			path:   "/v1/shops",
			header: "Bearer old",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("old").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expected: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			method: http.MethodGet,
			path:   "/v1/shops",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{UserName: "admin", UserRoleID: domain.RoleAdmin}, nil)
			},
			expected: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	withClaims := func(claims *domain.Claims) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/v1/shops", nil)
		if claims == nil {
			return req
		}
		return req.WithContext(context.WithValue(req.Context(), ContextKeyUser, claims))
	}

	tests := []struct {
		name     string
		claims   *domain.Claims
		expected int
	}{
		{name: "administrador", claims: &domain.Claims{UserName: "admin", UserRoleID: domain.RoleAdmin}, expected: http.StatusOK},
		{name: "outro role", claims: &domain.Claims{UserName: "viewer", UserRoleID: 2}, expected: http.StatusForbidden},
		{name: "sem autenticação", expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			AdminOnly()(okHandler).ServeHTTP(rec, withClaims(tt.claims))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	cors := Cors([]string{"http://localhost:3000"})

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		cors(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		cors(okHandler).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight não chega ao handler", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		req := httptest.NewRequest(http.MethodOptions, "/v1/reports", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		cors(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://any.example")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "http://any.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		LogPanicMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
