package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ierr "charty-dashboard-backend/internal/errors"
	"charty-dashboard-backend/internal/logger"
	"charty-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]*auth.Claims

func (s stubVerifier) VerifyToken(token string) (*auth.Claims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, ierr.NewError("bad token").Mark(ierr.ErrAuth)
}

func TestSessionAuth(t *testing.T) {
	r := gin.New()
	r.Use(SessionAuth(stubVerifier{"good": {UserID: "u1"}}))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})

	cases := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{name: "no token", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, status: http.StatusOK},
		{name: "cookie", setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"}) }, status: http.StatusOK},
		{name: "bad bearer", setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, status: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, "u1", w.Body.String())
			}
		})
	}
}

func TestLoginRateLimit(t *testing.T) {
	r := gin.New()
	r.POST("/login", LoginRateLimit(2, logger.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "other clients keep their own budget")
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	store := newRateLimiterStore(rate.Every(time.Hour), 1, 20*time.Millisecond)

	first := store.getLimiter("10.0.0.1")
	require.True(t, first.Allow())
	assert.Same(t, first, store.getLimiter("10.0.0.1"))
	assert.False(t, store.getLimiter("10.0.0.1").Allow())

	time.Sleep(50 * time.Millisecond)
	_, ok := store.limiters.Get("10.0.0.1")
	assert.False(t, ok)
	assert.True(t, store.getLimiter("10.0.0.1").Allow(), "a fresh bucket after eviction")
}

func TestErrorHandlerAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logger.NewNop()), ErrorHandler(logger.NewNop()))
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(ierr.NewError("no row").WithHint("Chart not found.").Mark(ierr.ErrNotFound))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	for path, want := range map[string]struct {
		status int
		body   string
	}{
		"/missing": {http.StatusNotFound, `{"message":"Chart not found."}`},
		"/plain":   {http.StatusInternalServerError, `{"message":"Internal Server Error"}`},
		"/panic":   {http.StatusInternalServerError, `{"message":"Something went wrong."}`},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want.status, w.Code, path)
		assert.JSONEq(t, want.body, w.Body.String(), path)
	}
}
