package ratelimiter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockLimiter struct {
	allowFn func(ctx context.Context, key string) (bool, error)
}

func (m *mockLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return m.allowFn(ctx, key)
}

func setupRouter(l Limiter) *gin.Engine {
	r := gin.New()
	r.Use(Middleware(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

// TestMiddleware はリミッターの判定に応じてリクエストが通過または429で拒否されることを検証します。
func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		allow      bool
		err        error
		wantStatus int
	}{
		{"allowed", true, nil, http.StatusOK},
		{"limited", false, nil, http.StatusTooManyRequests},
		{"redis down fails open", false, errors.New("redis down"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotKey string
			l := &mockLimiter{allowFn: func(_ context.Context, key string) (bool, error) {
				gotKey = key
				return tt.allow, tt.err
			}}

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "192.0.2.10:4321"
			setupRouter(l).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "192.0.2.10", gotKey)
		})
	}
}
