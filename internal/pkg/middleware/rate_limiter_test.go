package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, limit int, period time.Duration) (*miniredis.Miniredis, echo.HandlerFunc) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit:test",
		Limit:       limit,
		Period:      period,
	})

	handler := limiter(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return mr, handler
}

func doRequest(t *testing.T, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/shares/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler(c))
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	_, handler := setupRateLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doRequest(t, handler)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(t, handler)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_WindowExpiryResetsCounter(t *testing.T) {
	mr, handler := setupRateLimiter(t, 1, time.Minute)

	rec := doRequest(t, handler)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	mr.FastForward(61 * time.Second)

	rec = doRequest(t, handler)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_RemainingHeaderCountsDown(t *testing.T) {
	_, handler := setupRateLimiter(t, 5, time.Minute)

	rec := doRequest(t, handler)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doRequest(t, handler)
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Remaining"))
}
