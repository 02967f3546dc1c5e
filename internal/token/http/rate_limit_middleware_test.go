package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	rateLimiter := NewRateLimiter(rps, burst, slog.Default())
	t.Cleanup(rateLimiter.Stop)

	router := gin.New()
	router.Use(rateLimiter.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Success_RequestsWithinBurst", func(t *testing.T) {
		router := setupRateLimitedRouter(t, 1, 3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		router := setupRateLimitedRouter(t, 1, 1)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(second, req)

		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get("Retry-After"))
		assert.Contains(t, second.Body.String(), "rate_limit_exceeded")
	})

	t.Run("Success_LimitersAreIndependentPerIP", func(t *testing.T) {
		router := setupRateLimitedRouter(t, 1, 1)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		router.ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		// A different client IP has its own bucket
		second := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.4:1234"
		router.ServeHTTP(second, req)
		assert.Equal(t, http.StatusOK, second.Code)
	})

	t.Run("Success_StopIsIdempotent", func(t *testing.T) {
		rateLimiter := NewRateLimiter(1, 1, slog.Default())

		rateLimiter.Stop()
		rateLimiter.Stop()
	})
}
