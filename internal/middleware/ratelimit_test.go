package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(t *testing.T, client *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := NewLimiter("2-M", client)
	require.NoError(t, err)

	r := gin.New()
	r.Use(RateLimit(l))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := NewLimiter("lots", nil)
	assert.Error(t, err)
}

func TestRateLimit_MemoryStore(t *testing.T) {
	r := newRateLimitedRouter(t, nil)

	assert.Equal(t, http.StatusOK, doGet(r, "/ping").Code)
	second := doGet(r, "/ping")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/ping").Code)
}

func TestRateLimit_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	r := newRateLimitedRouter(t, client)

	assert.Equal(t, http.StatusOK, doGet(r, "/ping").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/ping").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/ping").Code)

	keys := mr.Keys()
	require.NotEmpty(t, keys)
	assert.Contains(t, keys[0], rateLimitKeyPrefix)
}
