package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedRouter(t *testing.T, maxRequests int, window time.Duration) *gin.Engine {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/store/games", RateLimiter(client, maxRequests, window), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func hit(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/store/games", nil)
	request.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	router := newLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		recorder := hit(router)
		require.Equal(t, http.StatusOK, recorder.Code)
	}
}

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	router := newLimitedRouter(t, 2, time.Minute)

	hit(router)
	hit(router)
	recorder := hit(router)

	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Too many requests")
	assert.Equal(t, "0", recorder.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterSetsHeaders(t *testing.T) {
	router := newLimitedRouter(t, 5, time.Minute)

	recorder := hit(router)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "5", recorder.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", recorder.Header().Get("X-RateLimit-Remaining"))
}
