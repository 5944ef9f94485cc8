package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wallet_ledger/internal/service"
	"wallet_ledger/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, userID, walletID uint) error {
	return m.Called(userID, walletID).Error(0)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger())
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user": id})
	})
	r.GET("/wallet/:wallet", handlers...)
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := newEngine(JWTAuthMiddleware("secret"))
	good, err := utils.GenerateJWT(9, "a@b.com", "secret", time.Hour)
	assert.NoError(t, err)
	bad, err := utils.GenerateJWT(9, "a@b.com", "other", time.Hour)
	assert.NoError(t, err)

	rec := do(r, "/wallet/1", good)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user":9}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = do(r, "/wallet/1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid Authorization header")

	rec = do(r, "/wallet/1", bad)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
}

func TestWalletAccessMiddleware(t *testing.T) {
	auth := new(MockAuthorizer)
	auth.On("Authorize", uint(9), uint(1)).Return(nil)
	auth.On("Authorize", uint(9), uint(2)).Return(service.ErrPermissionDenied)
	auth.On("Authorize", uint(9), uint(3)).Return(errors.New("db down"))

	r := newEngine(JWTAuthMiddleware("secret"), WalletAccessMiddleware(auth, "wallet"))
	token, err := utils.GenerateJWT(9, "", "secret", time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/wallet/1", http.StatusOK, `"user":9`},
		{"/wallet/2", http.StatusBadRequest, service.ErrPermissionDenied.Error()},
		{"/wallet/3", http.StatusInternalServerError, "internal server error"},
		{"/wallet/abc", http.StatusBadRequest, "invalid wallet id"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(r, tt.path, token)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
	auth.AssertExpectations(t)
}

func TestWalletAccessMiddlewareWithoutUser(t *testing.T) {
	auth := new(MockAuthorizer)
	r := newEngine(WalletAccessMiddleware(auth, "wallet"))

	rec := do(r, "/wallet/1", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	auth.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything)
}

func TestRequestLoggerKeepsUpstreamID(t *testing.T) {
	r := newEngine()
	req := httptest.NewRequest(http.MethodGet, "/wallet/1", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
